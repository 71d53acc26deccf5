package providers_test

import (
	"github.com/preston-bernstein/cbb-daily-report/internal/providers"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers/fixture"
	"github.com/preston-bernstein/cbb-daily-report/internal/providers/sportsdata"
	"github.com/preston-bernstein/cbb-daily-report/internal/teststubs"
)

var (
	_ providers.DataProvider = (*sportsdata.Client)(nil)
	_ providers.DataProvider = (*fixture.Provider)(nil)
	_ providers.DataProvider = (*teststubs.StubProvider)(nil)
)
