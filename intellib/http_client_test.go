package intellib_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hydrantlabs/netintel/intellib"
	"github.com/mccutchen/go-httpbin/httpbin"
	"github.com/stretchr/testify/suite"
)

type HTTPClientTestSuite struct {
	suite.Suite

	httpbinEndpoint *httptest.Server
	c               intellib.HTTPClient
}

func (suite *HTTPClientTestSuite) SetupSuite() {
	suite.httpbinEndpoint = httptest.NewServer(httpbin.NewHTTPBin().Handler())
}

func (suite *HTTPClientTestSuite) TearDownSuite() {
	suite.httpbinEndpoint.Close()
}

func (suite *HTTPClientTestSuite) SetupTest() {
	suite.c = intellib.NewHTTPClient(suite.httpbinEndpoint.Client(),
		"test",
		100*time.Millisecond,
		1,
		5,
		time.Minute,
		time.Minute)
}

func (suite *HTTPClientTestSuite) TestRateLimiter() {
	now := time.Now()
	wg := &sync.WaitGroup{}

	wg.Add(10)

	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()

			req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/get", nil)
			resp, err := suite.c.Do(req)

			suite.NoError(err)
			suite.Equal(http.StatusOK, resp.StatusCode)
		}()
	}

	wg.Wait()

	suite.True(time.Since(now) > 700*time.Millisecond)
	suite.WithinDuration(now, time.Now(), 12*100*time.Millisecond)
}

func (suite *HTTPClientTestSuite) TestUserAgentIsSet() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/user-agent", nil)
	resp, err := suite.c.Do(req)

	suite.Require().NoError(err)

	defer resp.Body.Close()

	suite.Equal("test", req.Header.Get("User-Agent"))
}

func (suite *HTTPClientTestSuite) TestBadStatus() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/status/500", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
	suite.Equal(intellib.ReasonStatus, intellib.FailureReason(err))
}

func (suite *HTTPClientTestSuite) TestCannotDial() {
	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"1"+"/status/500", nil)
	_, err := suite.c.Do(req)

	suite.Error(err)
}

func (suite *HTTPClientTestSuite) TestCircuitBreakerOpens() {
	client := intellib.NewHTTPClient(suite.httpbinEndpoint.Client(),
		"test",
		time.Microsecond,
		100,
		2,
		time.Minute,
		time.Minute)

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/status/500", nil)
		_, err := client.Do(req)

		suite.Error(err)
	}

	req, _ := http.NewRequest("GET", suite.httpbinEndpoint.URL+"/get", nil)
	_, err := client.Do(req)

	suite.True(errors.Is(err, intellib.ErrCircuitBreakerOpened))
}

func TestHTTPClient(t *testing.T) {
	suite.Run(t, &HTTPClientTestSuite{})
}
