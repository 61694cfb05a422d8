package domain

import "strings"

// StageLabel is the canonical label for a sleep stage reported by a
// wearable provider.
// @Description Sleep stage: IN_BED, AWAKE, LIGHT, DEEP or REM.
type StageLabel string

const (
	// StageInBed means the user was in bed but not detected asleep
	StageInBed StageLabel = "IN_BED"
	// StageAwake is a detected wake period inside a sleep session
	StageAwake StageLabel = "AWAKE"
	// StageLight is light (core) sleep
	StageLight StageLabel = "LIGHT"
	// StageDeep is slow-wave sleep
	StageDeep StageLabel = "DEEP"
	// StageREM is rapid-eye-movement sleep
	StageREM StageLabel = "REM"
)

// stageAliases maps provider spellings and raw category codes to canonical
// labels. Numeric codes follow the HealthKit sleep analysis values; code 1
// (asleep, stage unspecified) is folded into light sleep.
var stageAliases = map[string]StageLabel{
	"IN_BED": StageInBed,
	"INBED":  StageInBed,
	"0":      StageInBed,
	"AWAKE":  StageAwake,
	"WAKE":   StageAwake,
	"2":      StageAwake,
	"LIGHT":  StageLight,
	"CORE":   StageLight,
	"ASLEEP": StageLight,
	"1":      StageLight,
	"3":      StageLight,
	"DEEP":   StageDeep,
	"4":      StageDeep,
	"REM":    StageREM,
	"5":      StageREM,
}

// ParseStageLabel resolves a raw provider stage string to its canonical
// label. Matching is case-insensitive and tolerant of provider aliases.
func ParseStageLabel(raw string) (StageLabel, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if stage, ok := stageAliases[key]; ok {
		return stage, nil
	}
	return "", ErrInvalidStage
}

// Valid reports whether the label is one of the five canonical stages.
func (s StageLabel) Valid() bool {
	switch s {
	case StageInBed, StageAwake, StageLight, StageDeep, StageREM:
		return true
	}
	return false
}

// Asleep reports whether the stage counts as actual sleep.
func (s StageLabel) Asleep() bool {
	switch s {
	case StageLight, StageDeep, StageREM:
		return true
	}
	return false
}

// ChartRow returns the vertical row index used when rendering a hypnogram,
// ordered from wakefulness at the top to deep sleep, with IN_BED below.
func (s StageLabel) ChartRow() int {
	switch s {
	case StageAwake:
		return 0
	case StageREM:
		return 1
	case StageLight:
		return 2
	case StageDeep:
		return 3
	case StageInBed:
		return 4
	}
	return -1
}

// AsleepStages lists the stages that count toward total sleep time.
func AsleepStages() []StageLabel {
	return []StageLabel{StageLight, StageDeep, StageREM}
}
