package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/Rorical/ChairFinder/internal/config"
	"github.com/Rorical/ChairFinder/internal/core"
	"github.com/Rorical/ChairFinder/internal/models"
)

func TestQuickTypeList_MentionsEveryType(t *testing.T) {
	list := quickTypeList()
	for _, q := range models.QuickTypes {
		if !strings.Contains(list, string(q)) {
			t.Errorf("list missing %q: %s", q, list)
		}
	}
}

func TestTimeoutLabel(t *testing.T) {
	if got := timeoutLabel(config.Profile{}); got != "30s (default)" {
		t.Errorf("timeoutLabel(empty) = %q", got)
	}
	if got := timeoutLabel(config.Profile{TimeoutSeconds: 5}); got != "5s" {
		t.Errorf("timeoutLabel(5) = %q", got)
	}
}

func TestReportedError_Unwraps(t *testing.T) {
	err := error(reportedError{core.ErrEmptyQuery})
	if !errors.Is(err, core.ErrEmptyQuery) {
		t.Error("reportedError should unwrap to the controller error")
	}
}
