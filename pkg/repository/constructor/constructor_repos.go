//nolint:whitespace // can't make both editor and linter happy
package constructor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpapenbr/f1-qualifying-loader/pkg/model"
	"github.com/mpapenbr/f1-qualifying-loader/pkg/repository"
)

var selector = `select c.id, c.constructor_id, c.name, c.nationality
	from constructor c`

// Create inserts a new constructor and puts the db-assigned id into item.ID.
func Create(ctx context.Context, conn repository.Querier, item *model.Constructor) error {
	row := conn.QueryRow(ctx, `
	insert into constructor (
		constructor_id, name, nationality
	) values ($1,$2,$3)
	returning id
		`,
		item.ConstructorID, item.Name, item.Nationality,
	)
	if err := row.Scan(&item.ID); err != nil {
		return err
	}
	return nil
}

func LoadByID(ctx context.Context, conn repository.Querier, id int32) (
	*model.Constructor, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where c.id=$1", selector), id)
	return readData(row)
}

func LoadByConstructorID(
	ctx context.Context,
	conn repository.Querier,
	constructorID string,
) (*model.Constructor, error) {
	row := conn.QueryRow(ctx,
		fmt.Sprintf("%s where c.constructor_id=$1", selector), constructorID)
	return readData(row)
}

func LoadAll(ctx context.Context, conn repository.Querier) (
	[]*model.Constructor, error,
) {
	rows, err := conn.Query(ctx, fmt.Sprintf("%s order by c.id asc", selector))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Constructor, 0)
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
func Update(ctx context.Context, conn repository.Querier, item *model.Constructor) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, `
		update constructor set name=$1, nationality=$2
		where constructor_id=$3
	`, item.Name, item.Nationality, item.ConstructorID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByConstructorID(
	ctx context.Context,
	conn repository.Querier,
	constructorID string,
) (int, error) {
	cmdTag, err := conn.Exec(ctx,
		"delete from constructor where constructor_id=$1", constructorID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (*model.Constructor, error) {
	var item model.Constructor
	if err := row.Scan(
		&item.ID,
		&item.ConstructorID,
		&item.Name,
		&item.Nationality,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoData
		}
		return nil, err
	}
	return &item, nil
}
