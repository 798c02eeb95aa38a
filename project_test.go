package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hecs-calculator/domain"
	"hecs-calculator/service"
)

func TestRenderSchedule_Repaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSchedule(&buf, service.Project(1000, 60000, 0)))

	out := buf.String()
	assert.Contains(t, out, "Year")
	assert.Contains(t, out, "600.00")
	assert.Contains(t, out, "400.00")
	assert.Contains(t, out, "Repaid in 2 years.")
}

func TestRenderSchedule_NotRepaid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSchedule(&buf, service.Project(1000, 50000, 0)))

	assert.Contains(t, buf.String(), "Not repaid after 30 years, 1000.00 remaining.")
}

func TestProjectCmd_JSON(t *testing.T) {
	cmd := projectCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--debt", "500", "--income", "60000", "--json"})

	require.NoError(t, cmd.Execute())

	var result domain.RepaymentResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, 1, result.YearsToRepay)
}

func TestProjectCmd_RejectsInvalidInput(t *testing.T) {
	cmd := projectCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--debt", "500", "--income", "60000", "--growth", "150"})

	err := cmd.Execute()
	assert.EqualError(t, err, "Growth must be a number between 0 and 100.")
}

func TestBracketsCmd(t *testing.T) {
	cmd := bracketsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "159664")
	assert.Contains(t, out.String(), "10.0%")
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging("debug", "json"))
	assert.NoError(t, setupLogging("info", "console"))
	assert.Error(t, setupLogging("verbose", "console"))
	assert.Error(t, setupLogging("info", "xml"))
}
