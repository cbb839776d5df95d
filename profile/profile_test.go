package profile

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPersonal_ExactValues(t *testing.T) {
	info := Personal()

	want := PersonalInfo{
		Name:          "Javier Argüeso",
		Location:      "Badajoz, España",
		Role:          "DevOps Engineer",
		Motto:         "Destroy Every Version On Production Servers",
		Education:     "Ingeniería Informática - Universidad de Extremadura",
		Certification: "Google Cloud Associate Engineer",
	}
	if info != want {
		t.Errorf("Personal() = %+v, want %+v", info, want)
	}
}

func TestProviders_Deterministic(t *testing.T) {
	if Personal() != Personal() {
		t.Error("Personal() differs between calls")
	}
	if !reflect.DeepEqual(Skills(), Skills()) {
		t.Error("Skills() differs between calls")
	}
	if !reflect.DeepEqual(Interests(), Interests()) {
		t.Error("Interests() differs between calls")
	}
	if !reflect.DeepEqual(Contact(), Contact()) {
		t.Error("Contact() differs between calls")
	}
}

func TestProviders_ReturnFreshCopies(t *testing.T) {
	s := Skills()
	s["cloud"][0] = "mutated"
	delete(s, "automation")

	again := Skills()
	if again["cloud"][0] != "Google Cloud" {
		t.Errorf("slice mutation leaked into next call: %q", again["cloud"][0])
	}
	if _, ok := again["automation"]; !ok {
		t.Error("map mutation leaked into next call")
	}

	c := Contact()
	c["github"] = "someone-else"
	if Contact()["github"] != "srcheesedev" {
		t.Error("contact mutation leaked into next call")
	}
}

func TestSkills_Categories(t *testing.T) {
	skills := Skills()
	cats := SkillCategories()

	if len(cats) != len(skills) {
		t.Fatalf("got %d categories for %d skill groups", len(cats), len(skills))
	}
	for _, cat := range cats {
		list, ok := skills[cat]
		if !ok {
			t.Errorf("category %q missing from Skills()", cat)
			continue
		}
		if len(list) == 0 {
			t.Errorf("category %q is empty", cat)
		}
	}
}

func TestInterests_Categories(t *testing.T) {
	interests := Interests()
	cats := InterestCategories()

	if len(cats) != len(interests) {
		t.Fatalf("got %d categories for %d interest groups", len(cats), len(interests))
	}
	for _, cat := range cats {
		if len(interests[cat]) == 0 {
			t.Errorf("category %q missing or empty", cat)
		}
	}
}

func TestContact_Platforms(t *testing.T) {
	contact := Contact()
	platforms := ContactPlatforms()

	if len(platforms) != len(contact) {
		t.Fatalf("got %d platforms for %d contact entries", len(platforms), len(contact))
	}
	for _, pl := range platforms {
		if contact[pl] == "" {
			t.Errorf("platform %q missing or empty", pl)
		}
	}
}

func TestAggregate_MergesAllProviders(t *testing.T) {
	p := Aggregate()

	if p.PersonalInfo != Personal() {
		t.Error("Aggregate() lost personal fields")
	}
	if !reflect.DeepEqual(p.Skills, Skills()) {
		t.Error("Aggregate().Skills differs from Skills()")
	}
	if !reflect.DeepEqual(p.Interests, Interests()) {
		t.Error("Aggregate().Interests differs from Interests()")
	}
	if !reflect.DeepEqual(p.Contact, Contact()) {
		t.Error("Aggregate().Contact differs from Contact()")
	}
}

func TestProfile_JSONKeys(t *testing.T) {
	data, err := json.Marshal(Aggregate())
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	// The personal fields must sit at the top level next to the three
	// nested mappings, with nothing lost or duplicated.
	want := []string{
		"name", "location", "role", "motto", "education", "certification",
		"skills", "interests", "contact",
	}
	if len(m) != len(want) {
		t.Errorf("got %d top-level keys, want %d: %v", len(m), len(want), m)
	}
	for _, key := range want {
		if _, ok := m[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
}

func TestProfile_JSONRoundTrip(t *testing.T) {
	orig := Aggregate()
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Profile
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(orig, decoded) {
		t.Errorf("round trip changed profile:\n got %+v\nwant %+v", decoded, orig)
	}
}
