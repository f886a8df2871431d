package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	nt "zupos/entity"
)

type rec map[string]any

func (r rec) Key() string            { return fmt.Sprintf("%v", r["id"]) }
func (r rec) Value(field string) any { return r[field] }

func keys(rows []rec) (out []string) {
	for _, row := range rows {
		out = append(out, row.Key())
	}
	return
}

var depots = []rec{
	{"id": 1, "name": "Ana Depo", "code": "100", "status": true},
	{"id": 2, "name": "Şube", "code": "200", "status": false},
	{"id": 3, "name": "Yedek DEPO", "code": "101", "status": true, "address": "Kadıköy"},
	{"id": 4, "name": "Merkez", "code": "300", "status": true, "address": ""},
}

func TestApplyEmptyIsIdentity(t *testing.T) {
	assert.Equal(t, depots, Apply(depots, nil))
	assert.Equal(t, depots, Apply(depots, []nt.Filter{}))
}

func TestApplyOperators(t *testing.T) {

	tests := []struct {
		name   string
		filter nt.Filter
		want   []string
	}{
		{"contains ignores case", nt.Filter{Field: "name", Op: nt.Contains, Value: "depo"}, []string{"1", "3"}},
		{"starts with", nt.Filter{Field: "name", Op: nt.StartsWith, Value: "ANA"}, []string{"1"}},
		{"ends with", nt.Filter{Field: "name", Op: nt.EndsWith, Value: "po"}, []string{"1", "3"}},
		{"contains coerces numbers", nt.Filter{Field: "id", Op: nt.Contains, Value: "3"}, []string{"3"}},
		{"contains non ascii", nt.Filter{Field: "name", Op: nt.Contains, Value: "ŞUBE"}, []string{"2"}},
		{"equals exact", nt.Filter{Field: "code", Op: nt.Equals, Value: "100"}, []string{"1"}},
		{"equals does not coerce", nt.Filter{Field: "id", Op: nt.Equals, Value: "1"}, nil},
		{"equals bool", nt.Filter{Field: "status", Op: nt.Equals, Value: false}, []string{"2"}},
		{"equals is case sensitive", nt.Filter{Field: "name", Op: nt.Equals, Value: "ana depo"}, nil},
		{"is empty ignores value", nt.Filter{Field: "address", Op: nt.IsEmpty, Value: "x"}, []string{"1", "2", "4"}},
		{"is not empty", nt.Filter{Field: "address", Op: nt.IsNotEmpty}, []string{"3"}},
		{"unknown op keeps all", nt.Filter{Field: "name", Op: "bogus", Value: "x"}, []string{"1", "2", "3", "4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, keys(Apply(depots, []nt.Filter{tc.filter})))
		})
	}
}

func TestApplyIsIntersection(t *testing.T) {

	all := []nt.Filter{
		{Field: "name", Op: nt.Contains, Value: "depo"},
		{Field: "code", Op: nt.StartsWith, Value: "10"},
		{Field: "status", Op: nt.Equals, Value: true},
		{Field: "address", Op: nt.IsNotEmpty},
	}

	for i := range all {
		for j := range all {
			f1, f2 := all[i], all[j]
			both := Apply(depots, []nt.Filter{f1, f2})
			chained := Apply(Apply(depots, []nt.Filter{f1}), []nt.Filter{f2})
			assert.Equal(t, keys(chained), keys(both), "%v then %v", f1, f2)
		}
	}
}

func TestMatch(t *testing.T) {

	assert.True(t, Match(depots[0], nil))
	assert.True(t, Match(depots[0], []nt.Filter{{Field: "name", Op: nt.Contains, Value: "ana"}}))
	assert.False(t, Match(depots[1], []nt.Filter{{Field: "name", Op: nt.Contains, Value: "ana"}}))
}
