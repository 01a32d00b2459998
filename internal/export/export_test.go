package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gauthierbraillon/curaplan/internal/planner"
)

func generate(t *testing.T) []planner.DailyPlan {
	t.Helper()
	schedule, err := planner.GenerateSchedule("2024-01-01", 3, planner.TonePoetic, 0)
	if err != nil {
		t.Fatal(err)
	}
	return schedule
}

func TestAC500_Export_JSONUsesCamelCaseAndKindTag(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, generate(t), FormatJSON); err != nil {
		t.Fatal(err)
	}

	var raw struct {
		Schedule []map[string]any `json:"schedule"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output should be valid json: %v", err)
	}
	day := raw.Schedule[0]
	for _, key := range []string{"date", "summary", "mainPhilosopher", "focusTheme", "curatorialAngle", "posts"} {
		if _, ok := day[key]; !ok {
			t.Errorf("day should carry %q", key)
		}
	}

	posts := day["posts"].([]any)
	video := posts[0].(map[string]any)
	carousel := posts[2].(map[string]any)
	if video["kind"] != "short-form-video" || carousel["kind"] != "static/carousel" {
		t.Errorf("posts should be tagged by kind, got %v and %v", video["kind"], carousel["kind"])
	}
	if _, ok := video["carousel"]; ok {
		t.Error("video post should not carry a carousel payload")
	}
	if _, ok := carousel["video"]; ok {
		t.Error("carousel post should not carry a video payload")
	}
}

func TestAC500_Export_JSONKeepsTurkishCharacters(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, generate(t), FormatJSON); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `\u00`) {
		t.Error("non-ASCII text should be written as-is")
	}
}

func TestAC501_Export_YAMLRoundTripKeepsVariants(t *testing.T) {
	schedule := generate(t)

	var buf bytes.Buffer
	if err := Encode(&buf, schedule, FormatYAML); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(schedule, decoded); diff != "" {
		t.Errorf("yaml should preserve the schedule (-want +got):\n%s", diff)
	}
}

func TestAC502_Export_EmptyScheduleIsAnEmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"schedule": []`) {
		t.Errorf("empty schedule should encode as an empty list, got: %s", buf.String())
	}
}

func TestAC503_Export_ParseFormat(t *testing.T) {
	testCases := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{"Yaml", FormatYAML},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.input)
		if err != nil || got != tc.want {
			t.Errorf("%q: expected %s, got %s (%v)", tc.input, tc.want, got, err)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("xml should be rejected, got: %v", err)
	}
}

func TestAC504_Export_TextIsNotAnEncoding(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, nil, FormatText); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("text output belongs to the display package, got: %v", err)
	}
}

func TestAC505_Export_DecodeRejectsMalformedPlans(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			"payload does not match kind",
			`{"schedule":[{"date":"2024-01-01","posts":[
				{"id":"a","kind":"short-form-video","carousel":{"format":["x"],"insight":"y"}},
				{"id":"b","kind":"short-form-video","video":{"structure":["x"]}},
				{"id":"c","kind":"static/carousel","carousel":{"format":["x"]}}]}]}`,
		},
		{
			"unknown kind and missing post",
			`{"schedule":[{"date":"2024-01-01","posts":[
				{"id":"a","kind":"short-form-video","video":{"structure":["x"]}},
				{"id":"b","kind":"bogus"}]}]}`,
		},
		{
			"no posts",
			`{"schedule":[{"date":"2024-01-01","posts":[]}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schedule, err := Decode(strings.NewReader(tc.doc), FormatJSON)
			if !errors.Is(err, planner.ErrInvalidPlan) {
				t.Errorf("malformed plan should be rejected, got err=%v", err)
			}
			if schedule != nil {
				t.Errorf("no days should be returned, got %d", len(schedule))
			}
		})
	}
}

func TestAC505_Export_DecodeRejectsMalformedYAML(t *testing.T) {
	doc := "schedule:\n  - date: \"2024-01-01\"\n    posts:\n      - id: a\n        kind: static/carousel\n"

	if _, err := Decode(strings.NewReader(doc), FormatYAML); !errors.Is(err, planner.ErrInvalidPlan) {
		t.Errorf("malformed yaml plan should be rejected, got: %v", err)
	}
}
