//nolint:whitespace // can't make both editor and linter happy
package qualifying

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
)

var selector = `select q.id, q.season, q.round, q.circuit_id, q.position,
	q.driver_id, q.constructor_id, q.q1, q.q2, q.q3 from qualifying_result q`

// Create inserts a new qualifying result and puts the db-assigned id into
// item.ID. The driver/constructor references must be persisted ids.
func Create(
	ctx context.Context,
	conn repository.Querier,
	item *model.QualifyingResult,
) error {
	row := conn.QueryRow(ctx, `
	insert into qualifying_result (
		season, round, circuit_id, position, driver_id, constructor_id,
		q1, q2, q3
	) values ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	returning id
		`,
		item.Season, item.Round, item.CircuitID, item.Position,
		item.DriverID, item.ConstructorID, item.Q1, item.Q2, item.Q3,
	)
	if err := row.Scan(&item.ID); err != nil {
		return err
	}
	return nil
}

// LoadBySeasonRoundDriver looks up a result by its composite natural key.
func LoadBySeasonRoundDriver(
	ctx context.Context,
	conn repository.Querier,
	season, round int,
	driverID int32,
) (*model.QualifyingResult, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where q.season=$1 and q.round=$2 and q.driver_id=$3",
			selector),
		season, round, driverID)
	return readData(row)
}

// Update overwrites all mutable fields of the persisted row identified by
// the composite natural key, returns number of rows affected.
func Update(
	ctx context.Context,
	conn repository.Querier,
	item *model.QualifyingResult,
) (int, error) {
	cmdTag, err := conn.Exec(ctx, `
		update qualifying_result set
		circuit_id=$1, position=$2, constructor_id=$3, q1=$4, q2=$5, q3=$6
		where season=$7 and round=$8 and driver_id=$9
	`,
		item.CircuitID, item.Position, item.ConstructorID,
		item.Q1, item.Q2, item.Q3,
		item.Season, item.Round, item.DriverID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes all results of a season, returns number of rows deleted.
func DeleteBySeason(ctx context.Context, conn repository.Querier, season int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx,
		"delete from qualifying_result where season=$1", season)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

var joinedSelector = `select q.season, q.round, q.circuit_id, q.position,
	d.driver_id, d.permanent_number, d.code, d.given_name, d.family_name,
	d.date_of_birth, d.nationality,
	c.constructor_id, c.name, c.nationality,
	q.q1, q.q2, q.q3
	from qualifying_result q
	join driver d on q.driver_id = d.id
	join constructor c on q.constructor_id = c.id`

// LoadJoined returns the denormalized result view, optionally restricted to
// one season, newest season/round first, ordered by position within a round.
func LoadJoined(ctx context.Context, conn repository.Querier, season *int) (
	[]*model.JoinedResult, error,
) {
	order := " order by q.season desc, q.round desc, q.position asc"
	var rows pgx.Rows
	var err error
	if season != nil {
		rows, err = conn.Query(ctx,
			fmt.Sprintf("%s where q.season=$1 %s", joinedSelector, order), *season)
	} else {
		rows, err = conn.Query(ctx, joinedSelector+order)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.JoinedResult, 0)
	for rows.Next() {
		var item model.JoinedResult
		if err := rows.Scan(
			&item.Season, &item.Round, &item.CircuitID, &item.Position,
			&item.DriverID, &item.PermanentNumber, &item.Code,
			&item.GivenName, &item.FamilyName,
			&item.DateOfBirth, &item.Nationality,
			&item.ConstructorID, &item.ConstructorName,
			&item.ConstructorNationality,
			&item.Q1, &item.Q2, &item.Q3,
		); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, nil
}

func readData(row pgx.Row) (*model.QualifyingResult, error) {
	var item model.QualifyingResult
	if err := row.Scan(
		&item.ID,
		&item.Season,
		&item.Round,
		&item.CircuitID,
		&item.Position,
		&item.DriverID,
		&item.ConstructorID,
		&item.Q1,
		&item.Q2,
		&item.Q3,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
