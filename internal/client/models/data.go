package models

import "encoding/json"

// Request is a reserved record type. The collection is persisted as-is but
// no operation reads or writes its items.
type Request = json.RawMessage

// Data is every collection, serialized as one JSON object under a single
// storage key.
type Data struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// Normalize replaces nil collections with empty ones so the blob always
// carries all four arrays.
func (d *Data) Normalize() {
	if d.Accounts == nil {
		d.Accounts = []Account{}
	}
	if d.Departments == nil {
		d.Departments = []Department{}
	}
	if d.Employees == nil {
		d.Employees = []Employee{}
	}
	if d.Requests == nil {
		d.Requests = []Request{}
	}
}

// Clone returns a copy that shares no slices with d.
func (d Data) Clone() Data {
	out := Data{
		Accounts:    append([]Account{}, d.Accounts...),
		Departments: append([]Department{}, d.Departments...),
		Employees:   append([]Employee{}, d.Employees...),
		Requests:    make([]Request, len(d.Requests)),
	}
	for i, r := range d.Requests {
		out.Requests[i] = append(Request{}, r...)
	}
	return out
}
