package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel("info")

	SetLevel("debug")
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", Log.GetLevel())
	}

	// An unparseable value keeps the current level.
	SetLevel("shouting")
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected level to stay debug, got %v", Log.GetLevel())
	}
}
