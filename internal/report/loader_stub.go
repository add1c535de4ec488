package report

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"curator/internal/fixture"
)

// The loader stub's shape is dictated by the consuming TypeScript test
// suite: named imports per fixture key, bulk imports, a typed alias,
// and three fixed convenience groupings.
const loaderTemplate = `// Auto-generated fixture loader
// Generated: {{.Generated}}

import { StravaActivity } from '{{.BaseImport}}'

// Individual fixtures
{{range .Fixtures}}import {{.Ident}}Json from './{{.Key}}.json'
{{end}}
// All fixtures combined
import allFixturesJson from './all-fixtures.json'

// Raw activities (full year data)
import rawActivitiesJson from './raw-activities.json'

// Type the imports
type ComprehensiveActivity = StravaActivity & {
  comprehensiveData: {
    photos: Array<{ unique_id: string; urls: Record<string, string> }>
    comments: Array<{ id: number; text: string; athlete: { firstname: string; lastname: string } }>
    streams: Record<string, { data: number[] | [number, number][] }>
    fetchedAt: string
  }
}

export const fixtures = {
{{range .Fixtures}}  {{.Ident}}: {{.Ident}}Json as unknown as ComprehensiveActivity,
{{end}}}

export const allFixtures = allFixturesJson as unknown as Record<string, ComprehensiveActivity>

export const rawActivities = rawActivitiesJson as unknown as {
  activities: ComprehensiveActivity[]
  metadata: {
    totalCount: number
    dateRange: { after: string; before: string }
    fetchedAt: string
  }
}

// Convenience groupings
export const raceFixtures = {
  ultramarathon: fixtures.race_ultramarathon,
  marathon: fixtures.race_marathon,
  halfMarathon: fixtures.race_half_marathon,
  thirtyK: fixtures.race_other,
}

export const trainingFixtures = {
  longRun: fixtures.training_long_run,
  easy: fixtures.training_easy,
}

export const edgeCaseFixtures = {
  noGps: fixtures.edge_no_gps,
  veryLong: fixtures.edge_very_long,
  veryShort: fixtures.edge_very_short,
  highElevation: fixtures.edge_high_elevation,
}
`

type loaderFixture struct {
	Key   string
	Ident string
}

type loaderData struct {
	Generated  string
	BaseImport string
	Fixtures   []loaderFixture
}

var loaderTmpl = template.Must(template.New("loader").Parse(loaderTemplate))

// LoaderStub renders the TypeScript loader for the selected fixtures.
// baseImport is the module specifier of the consumer's activity type.
func LoaderStub(sel *fixture.Selection, baseImport string, generated time.Time) (string, error) {
	data := loaderData{
		Generated:  generated.Format(time.RFC3339),
		BaseImport: baseImport,
	}
	for _, key := range sel.Keys() {
		data.Fixtures = append(data.Fixtures, loaderFixture{
			Key:   key,
			Ident: strings.ReplaceAll(key, "-", "_"),
		})
	}

	var b strings.Builder
	if err := loaderTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("report: render loader stub: %w", err)
	}
	return b.String(), nil
}
