package models

import (
	"encoding/json"
	"testing"
)

func TestListingDecodeFlexibleJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantPrice FlexFloat
		wantBeds  FlexInt
	}{
		{
			"numbers",
			`{"id":"l1","type":"Apartment","country":"Canada","bedrooms":2,"price":45000}`,
			NewFlexFloat(45000), NewFlexInt(2),
		},
		{
			"numeric strings",
			`{"id":"l2","type":"House","country":"Vietnam","bedrooms":"3","price":"90000"}`,
			NewFlexFloat(90000), NewFlexInt(3),
		},
		{
			"malformed stays invalid",
			`{"id":"l3","type":"Villa","country":"Canada","bedrooms":"many","price":"not-a-number"}`,
			FlexFloat{}, FlexInt{},
		},
		{
			"null stays invalid",
			`{"id":"l4","type":"Villa","country":"Canada","bedrooms":null,"price":null}`,
			FlexFloat{}, FlexInt{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Listing
			if err := json.Unmarshal([]byte(tt.payload), &l); err != nil {
				t.Fatalf("decode must never fail on flexible fields: %v", err)
			}
			if l.Price != tt.wantPrice {
				t.Errorf("Price = %+v, want %+v", l.Price, tt.wantPrice)
			}
			if l.Bedrooms != tt.wantBeds {
				t.Errorf("Bedrooms = %+v, want %+v", l.Bedrooms, tt.wantBeds)
			}
		})
	}
}

func TestFlexMarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewFlexInt(4))
	if err != nil || string(b) != "4" {
		t.Errorf("FlexInt marshal = %s, %v; want 4", b, err)
	}
	b, err = json.Marshal(FlexInt{})
	if err != nil || string(b) != "null" {
		t.Errorf("invalid FlexInt marshal = %s, %v; want null", b, err)
	}
	b, err = json.Marshal(NewFlexFloat(45000.5))
	if err != nil || string(b) != "45000.5" {
		t.Errorf("FlexFloat marshal = %s, %v; want 45000.5", b, err)
	}
	b, err = json.Marshal(FlexFloat{})
	if err != nil || string(b) != "null" {
		t.Errorf("invalid FlexFloat marshal = %s, %v; want null", b, err)
	}
}

func TestEntityBagMerge(t *testing.T) {
	typ := "Apartment"
	country := "Canada"
	beds := 2
	newBeds := 3

	base := EntityBag{Type: &typ, Bedrooms: &beds}
	base.Merge(EntityBag{Country: &country, Bedrooms: &newBeds})

	if base.Type == nil || *base.Type != "Apartment" {
		t.Error("absent field must keep the existing value")
	}
	if base.Country == nil || *base.Country != "Canada" {
		t.Error("new field must be adopted")
	}
	if base.Bedrooms == nil || *base.Bedrooms != 3 {
		t.Error("present field must overwrite")
	}
}
