package player

import (
	"reflect"
	"testing"
)

func samplePlayers() []Attributes {
	return []Attributes{
		{FullName: "Emmanuel Oladipo", Age: 18, Position: "Striker", Nationality: "Nigerian",
			PreferredFoot: FootRight, ValueInEuros: 550000, AvailableForTransfer: true, OpenToTrials: true},
		{FullName: "David Adebayo", Age: 22, Position: "Midfielder", Nationality: "Nigerian",
			PreferredFoot: FootLeft, ValueInEuros: 300000, AvailableForTransfer: true, OpenToTrials: true},
		{FullName: "Michael Olawale", Age: 25, Position: "Defender", Nationality: "Nigerian",
			PreferredFoot: FootRight, ValueInEuros: 420000, AvailableForTransfer: false, OpenToTrials: false},
		{FullName: "John Eze", Age: 30, Position: "Striker", Nationality: "Ghanaian",
			PreferredFoot: FootRight, ValueInEuros: 650000, AvailableForTransfer: true, OpenToTrials: false},
		{FullName: "Samuel Nwankwo", Age: 35, Position: "Midfielder", Nationality: "Nigerian",
			PreferredFoot: FootBoth, ValueInEuros: 480000, AvailableForTransfer: false, OpenToTrials: true},
	}
}

func names(players []Attributes) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.FullName
	}
	return out
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	players := samplePlayers()
	got := Filter(players, Criteria{})

	if !reflect.DeepEqual(names(got), names(players)) {
		t.Errorf("empty criteria changed the list: got %v, want %v", names(got), names(players))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	players := samplePlayers()
	c := Criteria{Position: "Striker", AgeRange: &Range{Min: 16, Max: 28}}

	once := Filter(players, c)
	twice := Filter(once, c)

	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("filter not idempotent: once %v, twice %v", names(once), names(twice))
	}
}

func TestFilterAgeRangeInclusiveBoundsPreservesOrder(t *testing.T) {
	// Ages are [18, 22, 25, 30, 35]; [20, 30] keeps 22, 25 and 30 with both
	// bounds inclusive and original relative order intact.
	got := Filter(samplePlayers(), Criteria{AgeRange: &Range{Min: 20, Max: 30}})

	want := []string{"David Adebayo", "Michael Olawale", "John Eze"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("age range [20,30]: got %v, want %v", names(got), want)
	}
}

func TestFilterNoMatchIsEmptyNotError(t *testing.T) {
	players := []Attributes{
		{FullName: "Michael Olawale", Position: "Defender"},
		{FullName: "David Adebayo", Position: "Midfielder"},
	}

	got := Filter(players, Criteria{Position: "Striker"})
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", names(got))
	}
}

func TestFilterInvertedRangeMatchesNothing(t *testing.T) {
	got := Filter(samplePlayers(), Criteria{AgeRange: &Range{Min: 30, Max: 20}})
	if len(got) != 0 {
		t.Errorf("inverted range should match nothing, got %v", names(got))
	}
}

func TestFilterTextSearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(samplePlayers(), Criteria{Search: "olaDIPO"})
	if want := []string{"Emmanuel Oladipo"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("search: got %v, want %v", names(got), want)
	}

	got = Filter(samplePlayers(), Criteria{Nationality: "nigerian"})
	if len(got) != 4 {
		t.Errorf("nationality search: got %d players, want 4", len(got))
	}
}

func TestFilterBooleanFlagsOnlyConstrainWhenSet(t *testing.T) {
	all := Filter(samplePlayers(), Criteria{AvailableForTransfer: false})
	if len(all) != 5 {
		t.Errorf("unset flag should not constrain: got %d players, want 5", len(all))
	}

	available := Filter(samplePlayers(), Criteria{AvailableForTransfer: true})
	want := []string{"Emmanuel Oladipo", "David Adebayo", "John Eze"}
	if !reflect.DeepEqual(names(available), want) {
		t.Errorf("available flag: got %v, want %v", names(available), want)
	}
}

// Each candidate fails exactly one predicate; membership in the result must
// track per-candidate satisfaction of every active predicate.
func TestFilterPredicatesAreConjoined(t *testing.T) {
	base := Attributes{
		FullName: "Test Player", Age: 22, Position: "Striker", Nationality: "Nigerian",
		PreferredFoot: FootRight, ValueInEuros: 500000, AvailableForTransfer: true, OpenToTrials: true,
	}

	failsAge := base
	failsAge.FullName = "Too Old"
	failsAge.Age = 41

	failsPosition := base
	failsPosition.FullName = "Wrong Position"
	failsPosition.Position = "Defender"

	failsFoot := base
	failsFoot.FullName = "Wrong Foot"
	failsFoot.PreferredFoot = FootLeft

	failsValue := base
	failsValue.FullName = "Too Expensive"
	failsValue.ValueInEuros = 2000000

	failsTransfer := base
	failsTransfer.FullName = "Not For Transfer"
	failsTransfer.AvailableForTransfer = false

	candidates := []Attributes{base, failsAge, failsPosition, failsFoot, failsValue, failsTransfer}

	c := Criteria{
		Position:             "Striker",
		PreferredFoot:        "right",
		AvailableForTransfer: true,
		AgeRange:             &Range{Min: 16, Max: 40},
		ValueRange:           &Range{Min: 0, Max: 1000000},
	}

	got := Filter(candidates, c)
	if want := []string{"Test Player"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("conjunction: got %v, want %v", names(got), want)
	}

	for _, candidate := range candidates[1:] {
		if c.Matches(candidate) {
			t.Errorf("%s should fail its predicate", candidate.FullName)
		}
	}
}

func TestRangeContains(t *testing.T) {
	r := &Range{Min: 10, Max: 20}

	for _, v := range []int64{10, 15, 20} {
		if !r.Contains(v) {
			t.Errorf("Contains(%d) = false, want true", v)
		}
	}
	for _, v := range []int64{9, 21} {
		if r.Contains(v) {
			t.Errorf("Contains(%d) = true, want false", v)
		}
	}

	var unbounded *Range
	if !unbounded.Contains(999) {
		t.Error("nil range should contain everything")
	}
}
