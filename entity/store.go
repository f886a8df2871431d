package entity

import "strconv"

// StoreDef is a store (depot) definition in the back office.
type StoreDef struct {
	Id           int    `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	TransferType string `json:"transferType"`
	Address      string `json:"address,omitempty"`
	Gsm          string `json:"gsm,omitempty"`
	Status       bool   `json:"status"`
}

// Key returns the store id as a string.
func (sd StoreDef) Key() string {
	return strconv.Itoa(sd.Id)
}

// Value returns the named field, nil when unknown.
func (sd StoreDef) Value(field string) any {
	switch field {
	case "id":
		return sd.Id
	case "code":
		return sd.Code
	case "name":
		return sd.Name
	case "transferType":
		return sd.TransferType
	case "address":
		if sd.Address == "" {
			return nil
		}
		return sd.Address
	case "gsm":
		if sd.Gsm == "" {
			return nil
		}
		return sd.Gsm
	case "status":
		return sd.Status
	}
	return nil
}
