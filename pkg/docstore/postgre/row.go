package postgre

import (
	"encoding/json"
	"time"

	"logistic-api/pkg/docstore"
	"logistic-api/pkg/search"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/types"
)

type row struct {
	ID        string     `boil:"id"`
	Data      types.JSON `boil:"data"`
	CreatedAt time.Time  `boil:"created_at"`
	UpdatedAt null.Time  `boil:"updated_at"`
}

func (r row) toRecord() (docstore.Record, error) {
	var data search.Document
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return docstore.Record{}, err
		}
	}
	if data == nil {
		data = search.Document{}
	}

	updatedAt := r.CreatedAt
	if r.UpdatedAt.Valid {
		updatedAt = r.UpdatedAt.Time
	}
	return docstore.Record{
		ID:        r.ID,
		Data:      data,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: updatedAt.UTC(),
	}, nil
}
