// Package doctor inspects an xig setup and reports problems with recommendations.
package doctor

import (
	"fmt"
	"strings"

	"github.com/conn-castle/xig/internal/config"
	"github.com/conn-castle/xig/internal/gateway"
	"github.com/conn-castle/xig/internal/messages"
)

// Status is the outcome of a single check.
type Status string

// Check outcomes.
const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckConfig reports whether the configuration layers resolved. Downstream checks
// need the settings, so a failure returns nil settings.
func CheckConfig(resolve func() (config.Settings, error)) ([]Result, *config.Settings) {
	settings, err := resolve()
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigLoaded,
	}}, &settings
}

// CheckSource verifies that a gateway source directory is configured or detected.
func CheckSource(sys gateway.System, settings config.Settings) []Result {
	if settings.GatewayDir == "" {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSource,
			Message:        messages.DoctorSourceMissing,
			Recommendation: messages.DoctorSourceMissingRecommend,
		}}
	}
	info, err := sys.Stat(settings.GatewayDir)
	if err != nil || !info.IsDir() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSource,
			Message:        fmt.Sprintf(messages.DoctorSourceNotDirFmt, settings.GatewayDir),
			Recommendation: messages.DoctorSourceMissingRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSource,
		Message:   fmt.Sprintf(messages.DoctorSourceFoundFmt, settings.GatewayDir),
	}}
}

// CheckTarget verifies that the target directory exists and accepts writes.
func CheckTarget(sys gateway.System, settings config.Settings) []Result {
	info, err := sys.Stat(settings.TargetDir)
	if err != nil || !info.IsDir() {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetMissingFmt, settings.TargetDir),
			Recommendation: messages.DoctorTargetMissingRecommend,
		}}
	}
	if err := sys.Writable(settings.TargetDir); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameTarget,
			Message:        fmt.Sprintf(messages.DoctorTargetNotWritableFmt, settings.TargetDir),
			Recommendation: messages.DoctorTargetNotWritableRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameTarget,
		Message:   fmt.Sprintf(messages.DoctorTargetFoundFmt, settings.TargetDir),
	}}
}

// CheckGateways summarizes the catalog and warns about outdated installed gateways.
func CheckGateways(catalog *gateway.Catalog) []Result {
	statuses, err := catalog.Statuses()
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameGateways,
			Message:   fmt.Sprintf(messages.DoctorGatewaysFailedFmt, err),
		}}
	}
	if len(statuses) == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameGateways,
			Message:        messages.DoctorGatewaysNone,
			Recommendation: messages.DoctorGatewaysNoneRecommend,
		}}
	}

	installed := 0
	var outdated []string
	for _, status := range statuses {
		if !status.Installed {
			continue
		}
		installed++
		if status.Outdated {
			outdated = append(outdated, status.Name)
		}
	}
	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameGateways,
		Message:   fmt.Sprintf(messages.DoctorGatewaysSummaryFmt, len(statuses), installed),
	}}
	if len(outdated) > 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameGateways,
			Message:        fmt.Sprintf(messages.DoctorGatewaysOutdatedFmt, len(outdated), strings.Join(outdated, ", ")),
			Recommendation: messages.DoctorGatewaysOutdatedRecommend,
		})
	}
	return results
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
