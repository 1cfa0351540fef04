package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/xig/internal/config"
	"github.com/conn-castle/xig/internal/doctor"
	"github.com/conn-castle/xig/internal/messages"
)

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, messages.DoctorHealthCheckFmt)

			results, settings := doctor.CheckConfig(func() (config.Settings, error) {
				return flags.settings(cmd)
			})
			if settings != nil {
				results = append(results, doctor.CheckSource(gatewaySystem, *settings)...)
				results = append(results, doctor.CheckTarget(gatewaySystem, *settings)...)
				if !doctor.HasFailure(results) {
					executor, err := newExecutor(cmd, *settings)
					if err != nil {
						return err
					}
					results = append(results, doctor.CheckGateways(executor.Catalog())...)
				}
			}

			for _, r := range results {
				printResult(out, r)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		prefix := messages.DoctorRecommendationIndent
		if i == 0 {
			prefix = messages.DoctorRecommendationPrefix
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", prefix, line)
	}
}
