package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GenreList is an ordered sequence of genre tags stored as a single
// serialized text column, so the same model works on postgres and sqlite.
type GenreList []string

func (g GenreList) Value() (driver.Value, error) {
	if g == nil {
		g = GenreList{}
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (g *GenreList) Scan(value interface{}) error {
	if value == nil {
		*g = GenreList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("cannot scan %T into GenreList", value)
	}
}
