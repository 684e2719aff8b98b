package contract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cv-builder/resume/model"
)

var payloadCmpOpts = cmp.AllowUnexported(model.Description{}, model.Optional[string]{})

func strPtr(s string) *string { return &s }

func sampleResume() *model.Resume {
	return &model.Resume{
		ID:          "r-1",
		Title:       "  Backend Engineer ",
		Description: "Builds services.",
		ImageURL:    " ",
		WorkExperiences: []model.WorkExperience{
			{Company: "Acme", Position: "Engineer", Description: model.FreeText("Shipped billing\n\n  Cut latency  "), StartDate: strPtr("2020-01-01"), IsCurrent: true},
			{Company: " ", Position: "", Description: model.Bulleted("orphan")},
			{Position: "Contractor", Description: model.Bulleted("", "Consulted")},
		},
		Educations: []model.Education{
			{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", StartDate: strPtr("2014-09-01"), EndDate: strPtr("2018-06-01")},
			{FieldOfStudy: "only a field"},
		},
		Languages: []model.Language{{Name: "English", Level: " "}, {Name: "", Level: "C1"}},
		Projects:  []model.Project{{Title: "cvgen", Link: strPtr(" ")}, {}},
		Skills:    []string{"Go", " ", " SQL "},
	}
}

func TestHydrateEmptyInputYieldsPlaceholders(t *testing.T) {
	for name, form := range map[string]*model.Form{
		"nil":          Hydrate(nil),
		"empty record": Hydrate(&model.Resume{}),
		"empty json":   HydrateJSON([]byte(`{}`)),
		"not json":     HydrateJSON([]byte(`not json at all`)),
	} {
		t.Run(name, func(t *testing.T) {
			if len(form.WorkExperiences) < 1 || len(form.Educations) < 1 || len(form.Languages) < 1 || len(form.Projects) < 1 || len(form.Skills) < 1 {
				t.Fatalf("expected every collection non-empty, got %+v", form)
			}
			if len(form.WorkExperiences[0].Bullets) != 1 {
				t.Fatalf("expected one bullet slot, got %v", form.WorkExperiences[0].Bullets)
			}
			assertKeys(t, form.WorkExperiences[0], "company", "position", "description", "startDate", "endDate", "isCurrent")
			assertKeys(t, form.Educations[0], "school", "degree", "fieldOfStudy", "startDate", "endDate")
			assertKeys(t, form.Languages[0], "name", "level")
			assertKeys(t, form.Projects[0], "title", "description", "link")
		})
	}
}

func assertKeys(t *testing.T, v any, keys ...string) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			t.Fatalf("expected key %q in %s", key, raw)
		}
	}
	if len(fields) != len(keys) {
		t.Fatalf("expected %d keys, got %s", len(keys), raw)
	}
}

func TestHydrateNormalizesDescriptions(t *testing.T) {
	form := Hydrate(sampleResume())
	if diff := cmp.Diff([]string{"Shipped billing", "Cut latency"}, form.WorkExperiences[0].Bullets); diff != "" {
		t.Fatalf("free text bullets mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "Consulted"}, form.WorkExperiences[2].Bullets); diff != "" {
		t.Fatalf("bulleted source mismatch (-want +got):\n%s", diff)
	}
	if form.WorkExperiences[0].EndDate != "" {
		t.Fatalf("expected empty end date, got %q", form.WorkExperiences[0].EndDate)
	}
}

func TestHydrateDoesNotAliasInput(t *testing.T) {
	raw := sampleResume()
	form := Hydrate(raw)
	form.Skills[0] = "Rust"
	if raw.Skills[0] != "Go" {
		t.Fatalf("expected input skills untouched, got %v", raw.Skills)
	}
}

func TestHydrateJSONDefaultsWronglyTypedFields(t *testing.T) {
	form := HydrateJSON([]byte(`{"title": 5, "skills": ["Go"], "workExperiences": "nope", "unknown": true}`))
	if form.Title != "" {
		t.Fatalf("expected title defaulted, got %q", form.Title)
	}
	if diff := cmp.Diff([]string{"Go"}, form.Skills); diff != "" {
		t.Fatalf("skills mismatch (-want +got):\n%s", diff)
	}
	if len(form.WorkExperiences) != 1 || form.WorkExperiences[0].Company != "" {
		t.Fatalf("expected placeholder work entry, got %+v", form.WorkExperiences)
	}
}

func TestSerializeFiltersAndTrims(t *testing.T) {
	payload := Serialize(Hydrate(sampleResume()), false)

	if payload.Title != "Backend Engineer" {
		t.Fatalf("expected trimmed title, got %q", payload.Title)
	}
	if payload.ImageURL.IsSet() {
		t.Fatalf("expected blank image to be unset")
	}
	if len(payload.WorkExperiences) != 2 {
		t.Fatalf("expected 2 work entries, got %d", len(payload.WorkExperiences))
	}
	if payload.WorkExperiences[1].Position != "Contractor" || payload.WorkExperiences[1].Company != "" {
		t.Fatalf("expected position-only entry kept, got %+v", payload.WorkExperiences[1])
	}
	if diff := cmp.Diff([]string{"Consulted"}, payload.WorkExperiences[1].Description.Items()); diff != "" {
		t.Fatalf("bullets mismatch (-want +got):\n%s", diff)
	}
	if payload.WorkExperiences[0].EndDate != nil {
		t.Fatalf("expected null end date")
	}
	if len(payload.Educations) != 1 {
		t.Fatalf("expected field-only education dropped, got %+v", payload.Educations)
	}
	if len(payload.Languages) != 1 || payload.Languages[0].Level != LanguageLevelFallback {
		t.Fatalf("expected one language with fallback level, got %+v", payload.Languages)
	}
	if len(payload.Projects) != 1 || payload.Projects[0].Link != nil {
		t.Fatalf("expected one project with null link, got %+v", payload.Projects)
	}
	if diff := cmp.Diff([]string{"Go", "SQL"}, payload.Skills); diff != "" {
		t.Fatalf("skills mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeDropsWorkWithoutCompanyOrPosition(t *testing.T) {
	form := model.NewForm()
	form.WorkExperiences = []*model.WorkEntry{
		{Company: "  ", Position: "", Bullets: []string{"lost"}},
		{Position: "Designer", Bullets: []string{""}},
	}
	payload := Serialize(form, true)
	if len(payload.WorkExperiences) != 1 || payload.WorkExperiences[0].Position != "Designer" {
		t.Fatalf("expected only the position entry, got %+v", payload.WorkExperiences)
	}
	if !payload.Editing {
		t.Fatalf("expected editing flag recorded")
	}
}

func TestSerializeEmptyCollectionsAreArrays(t *testing.T) {
	raw, err := json.Marshal(Serialize(model.NewForm(), false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":"","description":"","workExperiences":[],"educations":[],"languages":[],"projects":[],"skills":[]}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}

func TestSerializeDoesNotMutateForm(t *testing.T) {
	form := Hydrate(sampleResume())
	before := *form.WorkExperiences[0]
	_ = Serialize(form, false)
	if diff := cmp.Diff(before, *form.WorkExperiences[0]); diff != "" {
		t.Fatalf("form mutated (-before +after):\n%s", diff)
	}
}

func TestSerializeHydrateIsIdempotent(t *testing.T) {
	inputs := []*model.Resume{nil, {}, sampleResume()}
	for i, in := range inputs {
		once := Hydrate(in)
		twice := Hydrate(ptr(once.Resume()))
		if diff := cmp.Diff(Serialize(once, false), Serialize(twice, false), payloadCmpOpts); diff != "" {
			t.Fatalf("input %d: payload changed on re-hydration (-once +twice):\n%s", i, diff)
		}
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidatePayloadJSON(t *testing.T) {
	valid, err := json.Marshal(Serialize(Hydrate(sampleResume()), false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidatePayloadJSON(valid); err != nil {
		t.Fatalf("expected serialized payload to validate, got %v", err)
	}

	err = ValidatePayloadJSON([]byte(`{"description":"x","skills":[1]}`))
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected schema violation, got %v", err)
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || len(schemaErr.Violations) < 2 {
		t.Fatalf("expected at least two violations, got %v", err)
	}

	if err := ValidatePayloadJSON([]byte(`{"title":`)); !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected malformed body to be rejected, got %v", err)
	}
}
