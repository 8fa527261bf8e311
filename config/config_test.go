package config_test

import (
	"testing"

	"github.com/viotsoft/Altiq-hr-AI/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("HRMS_DEFAULT_LEAVE_BALANCE", "")
		t.Setenv("HRMS_SEARCH_LIMIT", "")
		t.Setenv("HRMS_SEARCH_CUTOFF", "")

		cfg := config.Load()
		assert.Equal(t, 20, cfg.DefaultLeaveBalance)
		assert.Equal(t, 5, cfg.SearchLimit)
		assert.Equal(t, 0.6, cfg.SearchCutoff)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HRMS_DEFAULT_LEAVE_BALANCE", "12")
		t.Setenv("HRMS_SEARCH_LIMIT", "3")
		t.Setenv("HRMS_SEARCH_CUTOFF", "0.8")

		cfg := config.Load()
		assert.Equal(t, 12, cfg.DefaultLeaveBalance)
		assert.Equal(t, 3, cfg.SearchLimit)
		assert.Equal(t, 0.8, cfg.SearchCutoff)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("HRMS_DEFAULT_LEAVE_BALANCE", "plenty")
		t.Setenv("HRMS_SEARCH_CUTOFF", "1.5")

		cfg := config.Load()
		assert.Equal(t, 20, cfg.DefaultLeaveBalance)
		assert.Equal(t, 0.6, cfg.SearchCutoff)
	})
}
