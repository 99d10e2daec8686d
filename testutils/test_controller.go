package testutils

import (
	"time"

	"github.com/itbasis/go-clock"
)

// Start is the time the mock clock is set to when a TestController is created.
var Start = time.Date(2024, time.October, 12, 15, 30, 0, 0, time.UTC)

// TestController holds the fakes a controller needs under test.
type TestController struct {
	Clock        *clock.Mock
	fakeSportsDB *FakeSportsDBServer
}

func (c *TestController) Close() {
	c.fakeSportsDB.Close()
}

func (c *TestController) SportsDBURL() string {
	return c.fakeSportsDB.URL()
}

// SportsDBRequests is the number of requests the fake sportsdb server has seen.
func (c *TestController) SportsDBRequests() int64 {
	return c.fakeSportsDB.Requests()
}

func NewTestController() *TestController {
	clk := clock.NewMock()
	clk.Set(Start)

	return &TestController{
		Clock:        clk,
		fakeSportsDB: NewFakeSportsDBServer(),
	}
}
