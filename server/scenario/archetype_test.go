package scenario

import "testing"

func TestArchetypeByName(t *testing.T) {
	a, ok := ArchetypeByName("TAG")
	if !ok {
		t.Fatal("tag not found")
	}
	if a.Name != "tag" || a.VPIP != 22 {
		t.Errorf("unexpected archetype %+v", a)
	}
	if _, ok := ArchetypeByName("wizard"); ok {
		t.Error("unknown archetype should not resolve")
	}
}

func TestArchetypeBaseRangeIsVPIP(t *testing.T) {
	for _, a := range Archetypes {
		if a.BaseRange() != a.VPIP {
			t.Errorf("%s base range %d != VPIP %d", a.Name, a.BaseRange(), a.VPIP)
		}
	}
}

func TestArchetypeRangesWidenWithVPIP(t *testing.T) {
	rock, _ := ArchetypeByName("rock")
	station, _ := ArchetypeByName("station")
	tight := rock.Range().Stats().TotalCombos
	loose := station.Range().Stats().TotalCombos
	if tight <= 0 {
		t.Fatal("rock range is empty")
	}
	if loose <= tight {
		t.Errorf("station range (%v combos) should be wider than rock (%v)", loose, tight)
	}
}
