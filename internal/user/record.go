package user

import (
	"bytes"
	"encoding/json"
)

// Address is the nested address object of a record.
type Address struct {
	City Text `json:"city"`
}

// Company is the nested company object of a record.
type Company struct {
	Name Text `json:"name"`
}

// Record is a single user as returned by the data source. Only the fields
// the table reads are modelled; anything else in the payload is ignored.
type Record struct {
	ID      Text    `json:"id"`
	Name    Text    `json:"name"`
	Email   Text    `json:"email"`
	Phone   Text    `json:"phone"`
	Address Address `json:"address"`
	Company Company `json:"company"`
}

// UnmarshalJSON tolerates a record that is not an object (it decodes to the
// zero Record, which fails validation) instead of failing the whole page.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	if !isObject(data) {
		*r = Record{}
		return nil
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Record(p)
	return nil
}

// UnmarshalJSON leaves the address empty when the payload is not an object.
func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	if !isObject(data) {
		*a = Address{}
		return nil
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Address(p)
	return nil
}

// UnmarshalJSON leaves the company empty when the payload is not an object.
func (c *Company) UnmarshalJSON(data []byte) error {
	type plain Company
	if !isObject(data) {
		*c = Company{}
		return nil
	}
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Company(p)
	return nil
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
