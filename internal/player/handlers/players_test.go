package handlers

import (
	"net/url"
	"testing"
)

func TestParseCriteriaEmptyQueryIsUnconstrained(t *testing.T) {
	c := parseCriteria(url.Values{})

	if c.Search != "" || c.Position != "" || c.Nationality != "" || c.PreferredFoot != "" {
		t.Errorf("text fields should be empty: %+v", c)
	}
	if c.AvailableForTransfer || c.OpenToTrials {
		t.Error("flags should be unset")
	}
	if c.AgeRange != nil || c.ValueRange != nil {
		t.Error("ranges should be nil when no bounds are given")
	}
}

func TestParseCriteriaReadsAllParameters(t *testing.T) {
	values := url.Values{
		"search":                 {"oladipo"},
		"position":               {"Striker"},
		"nationality":            {"Nigerian"},
		"preferred_foot":         {"left"},
		"available_for_transfer": {"true"},
		"open_to_trials":         {"true"},
		"min_age":                {"18"},
		"max_age":                {"23"},
		"min_value":              {"100000"},
		"max_value":              {"900000"},
	}

	c := parseCriteria(values)

	if c.Search != "oladipo" || c.Position != "Striker" || c.Nationality != "Nigerian" || c.PreferredFoot != "left" {
		t.Errorf("text fields: %+v", c)
	}
	if !c.AvailableForTransfer || !c.OpenToTrials {
		t.Error("flags should be set")
	}
	if c.AgeRange == nil || c.AgeRange.Min != 18 || c.AgeRange.Max != 23 {
		t.Errorf("AgeRange = %+v", c.AgeRange)
	}
	if c.ValueRange == nil || c.ValueRange.Min != 100000 || c.ValueRange.Max != 900000 {
		t.Errorf("ValueRange = %+v", c.ValueRange)
	}
}

func TestParseCriteriaHalfOpenBoundsFillDefaults(t *testing.T) {
	c := parseCriteria(url.Values{"min_age": {"21"}})

	if c.AgeRange == nil {
		t.Fatal("min_age alone should still produce a range")
	}
	if c.AgeRange.Min != 21 {
		t.Errorf("Min = %d, want 21", c.AgeRange.Min)
	}
	if c.AgeRange.Max != 100 {
		t.Errorf("Max = %d, want the open upper default", c.AgeRange.Max)
	}
}

func TestParseCriteriaIgnoresGarbageNumbers(t *testing.T) {
	c := parseCriteria(url.Values{"min_age": {"abc"}, "max_age": {"30"}})

	if c.AgeRange == nil {
		t.Fatal("a parsable bound should produce a range")
	}
	if c.AgeRange.Min != 0 || c.AgeRange.Max != 30 {
		t.Errorf("AgeRange = %+v, want [0,30]", c.AgeRange)
	}
}
