package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/host"

	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

func reportDir() string {
	return filepath.Join(getBaseLogDir(), "termprobe")
}

func hostFacts() string {
	facts := strings.Builder{}

	if id, errID := machineid.ID(); errID == nil {
		facts.WriteString(fmt.Sprintf("machine id: %s\n", id))
	} else {
		log.Err(errID).Msg("unable to read the machine id")
	}

	info, errInfo := host.Info()
	if errInfo != nil {
		log.Err(errInfo).Msg("unable to collect host info")

		return facts.String()
	}

	infoBytes, errMarshall := yaml.Marshal(info)
	if errMarshall != nil {
		log.Err(errMarshall).Msg("unable to marshal host info to YAML")

		return facts.String()
	}

	facts.Write(infoBytes)

	return facts.String()
}

// WriteReport dumps the build info, the effective configuration, the host
// facts and the error that took the program down into a report file, so a
// failed probe on an exotic platform can be debugged after the fact.
func WriteReport(mainErr interface{}) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	report := strings.Builder{}
	report.WriteString(divider)
	report.WriteString("\n| Version\n")
	report.WriteString(buildCmdVersion())
	report.WriteRune('\n')

	settings, errMarshall := yaml.Marshal(viper.AllSettings())
	if errMarshall != nil {
		log.Err(errMarshall).Msg("unable to marshal config to YAML")
	}

	report.WriteString("| Parameters\n")
	report.WriteString(divider)
	report.WriteRune('\n')
	report.Write(settings)
	report.WriteString(divider)
	report.WriteRune('\n')

	report.WriteString("| Host\n")
	report.WriteString(divider)
	report.WriteRune('\n')
	report.WriteString(hostFacts())
	report.WriteString(divider)

	report.WriteString("\n| Error\n")
	report.WriteString(divider)
	report.WriteRune('\n')
	report.WriteString(fmt.Sprintf("%s\n", mainErr))

	if errMkdirs := os.MkdirAll(reportDir(), os.ModePerm); errMkdirs != nil {
		panic(errMkdirs)
	}

	reportFilename := filepath.Join(reportDir(), fmt.Sprintf("report_%d.out", time.Now().Unix()))

	reportFile, errCreateReport := os.OpenFile(reportFilename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_SYNC, fileMode)
	if errCreateReport != nil {
		panic(errCreateReport)
	}

	defer reportFile.Close()

	reportFile.WriteString(report.String())

	log.Err(fmt.Errorf("%s", mainErr)).Msg("ERROR")
	log.Info().Str("report", reportFilename).Msg("Report created")
	log.Warn().Msg("Please, use the report to have more details...")
}
