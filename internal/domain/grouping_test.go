package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupingTable_Policy(t *testing.T) {
	table := DefaultGroupingTable()

	tests := []struct {
		keyword string
		name    string
		want    GroupPolicy
	}{
		{keyword: "def", name: "asd", want: GroupClauses},
		{keyword: "defp", name: "asd", want: GroupClauses},
		{keyword: "defmacro", name: "asd", want: GroupClauses},
		{keyword: "def", name: "handle_call", want: NeverGroup},
		{keyword: "def", name: "handle_cast", want: NeverGroup},
		{keyword: "defp", name: "handle_info", want: NeverGroup},
		{keyword: "test", name: "truth", want: NeverGroup},
		{keyword: "describe", name: "group", want: NeverGroup},
		{keyword: "defmodule", name: "Test", want: NeverGroup},
		{keyword: "if", name: "", want: NeverGroup},
	}

	for _, tt := range tests {
		t.Run(tt.keyword+" "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Policy(tt.keyword, tt.name))
			assert.Equal(t, tt.want == GroupClauses, table.Groups(tt.keyword, tt.name))
		})
	}
}

func TestNewGroupingTable_CustomNames(t *testing.T) {
	table := NewGroupingTable("init")

	assert.Equal(t, NeverGroup, table.Policy("def", "init"))
	assert.Equal(t, GroupClauses, table.Policy("def", "handle_call"))
	assert.Equal(t, NeverGroup, table.Policy("test", "init"))
}
