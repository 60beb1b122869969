package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cronozapp/cronoz/internal/model"
)

func newTestCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever}), &buf
}

func TestCLIMessageLevels(t *testing.T) {
	cli, buf := newTestCLI()

	cli.Success("done")
	cli.Warning("careful")
	cli.Error("broke")
	cli.Muted("aside")

	assert.Equal(t, "✓ done\n⚠ careful\n✗ broke\naside\n", buf.String())
}

func TestCLIActivityName(t *testing.T) {
	cli, _ := newTestCLI()

	activity := model.NewActivity("a1", "Focus", "", "#8FD694", time.Now())
	assert.Equal(t, "Focus", cli.ActivityName(&activity))

	// Orphaned references render a placeholder rather than panicking.
	assert.Equal(t, "unknown", cli.ActivityName(nil))
}

func TestCLIPrintTrackingStopped(t *testing.T) {
	cli, buf := newTestCLI()

	start := time.Date(2024, 5, 15, 10, 0, 0, 0, time.Local)
	activity := model.NewActivity("a1", "Focus", "", "", start)
	rec := model.NewTimeRecord("r1", "a1", start)
	rec.Close(start.Add(25 * time.Minute))

	cli.PrintTrackingStopped(&activity, &rec)

	out := buf.String()
	assert.Contains(t, out, "Stopped tracking Focus")
	assert.Contains(t, out, "25:00")
}
