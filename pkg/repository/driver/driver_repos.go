//nolint:whitespace // can't make both editor and linter happy
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
)

var selector = `select d.id, d.driver_id, d.permanent_number, d.code,
	d.given_name, d.family_name, d.date_of_birth, d.nationality from driver d`

// Create inserts a new driver and puts the db-assigned id into item.ID.
func Create(ctx context.Context, conn repository.Querier, item *model.Driver) error {
	row := conn.QueryRow(ctx, `
	insert into driver (
		driver_id, permanent_number, code, given_name, family_name,
		date_of_birth, nationality
	) values ($1,$2,$3,$4,$5,$6,$7)
	returning id
		`,
		item.DriverID, item.PermanentNumber, item.Code, item.GivenName,
		item.FamilyName, item.DateOfBirth, item.Nationality,
	)
	if err := row.Scan(&item.ID); err != nil {
		return err
	}
	return nil
}

func LoadByID(ctx context.Context, conn repository.Querier, id int32) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where d.id=$1", selector), id)
	return readData(row)
}

func LoadByDriverID(ctx context.Context, conn repository.Querier, driverID string) (
	*model.Driver, error,
) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where d.driver_id=$1", selector), driverID)
	return readData(row)
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Driver, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by d.id asc", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Driver, 0)
	for rows.Next() {
		item, err := readData(rows)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

// Update overwrites all mutable fields of the persisted row, returns number
// of rows affected.
func Update(ctx context.Context, conn repository.Querier, item *model.Driver) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
		update driver set
		permanent_number=$1, code=$2, given_name=$3, family_name=$4,
		date_of_birth=$5, nationality=$6
		where driver_id=$7
	`,
		item.PermanentNumber, item.Code, item.GivenName, item.FamilyName,
		item.DateOfBirth, item.Nationality, item.DriverID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByDriverID(ctx context.Context, conn repository.Querier, driverID string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from driver where driver_id=$1", driverID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (*model.Driver, error) {
	var item model.Driver
	if err := row.Scan(
		&item.ID,
		&item.DriverID,
		&item.PermanentNumber,
		&item.Code,
		&item.GivenName,
		&item.FamilyName,
		&item.DateOfBirth,
		&item.Nationality,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
