package models

import "encoding/json"

// Dashboard is the last successfully fetched dashboard payload.
type Dashboard struct {
	Status    bool          `json:"status"`
	Dashboard DashboardData `json:"dashboard"`
	User      User          `json:"user"`

	// Raw holds the complete response body, including fields not mapped above.
	Raw json.RawMessage `json:"-"`
}

// DashboardData is the "dashboard" object. An empty JSON array, which the
// API sends when it has nothing to report, decodes to the zero value.
type DashboardData struct {
	Amount  Amount  `json:"amount"`
	Student Student `json:"student"`
	Color   Color   `json:"color"`
}

// Amount holds fee totals in the institution's currency.
type Amount struct {
	Paid Number `json:"Paid"`
	Due  Number `json:"due"`
}

type Student struct {
	Boy  Count `json:"Boy"`
	Girl Count `json:"Girl"`
}

type Color struct {
	DynamicColor string `json:"dynamic_color"`
}

type User struct {
	Name string `json:"name"`
}

func (d *DashboardData) UnmarshalJSON(b []byte) error {
	if isEmptyJSON(b) {
		*d = DashboardData{}
		return nil
	}
	type plain DashboardData
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = DashboardData(v)
	return nil
}
