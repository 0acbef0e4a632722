package sleeper

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-stats/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL        = "https://api.sleeper.app/v1"
	defaultTimeout        = 10 * time.Second
	defaultPlayersTimeout = 60 * time.Second
	maxBodyBytes          = 8 << 20
	maxPlayersBodyBytes   = 64 << 20
)

var errSleeperTransient = crerr.New("sleeper transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	PlayersTimeout time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.Config
}

// Client reads league data from the Sleeper public API. It performs no
// retries; callers map failures to their own defaults.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	timeout        time.Duration
	playersTimeout time.Duration
	logger         *logging.Logger
	breaker        *resilience.Breaker
	flight         singleflight.Group
}

var _ usecase.SleeperProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	playersTimeout := cfg.PlayersTimeout
	if playersTimeout <= 0 {
		playersTimeout = defaultPlayersTimeout
	}

	breaker := resilience.New(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.State) {
		logger.Warn("sleeper circuit breaker state changed", "from", from.String(), "to", to.String())
	})

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		timeout:        timeout,
		playersTimeout: playersTimeout,
		logger:         logger,
		breaker:        breaker,
	}
}

func (c *Client) FetchLeagueInfo(ctx context.Context, leagueID string) (usecase.ExternalLeague, bool, error) {
	path, err := leaguePath(leagueID, "")
	if err != nil {
		return usecase.ExternalLeague{}, false, err
	}

	var out *usecase.ExternalLeague
	if err := c.getJSON(ctx, path, c.timeout, maxBodyBytes, &out); err != nil {
		return usecase.ExternalLeague{}, false, crerr.Wrapf(err, "fetch league league_id=%s", leagueID)
	}
	if out == nil {
		return usecase.ExternalLeague{}, false, nil
	}
	return *out, true, nil
}

func (c *Client) FetchLeagueUsers(ctx context.Context, leagueID string) ([]usecase.ExternalUser, error) {
	path, err := leaguePath(leagueID, "/users")
	if err != nil {
		return nil, err
	}

	var out []usecase.ExternalUser
	if err := c.getJSON(ctx, path, c.timeout, maxBodyBytes, &out); err != nil {
		return nil, crerr.Wrapf(err, "fetch league users league_id=%s", leagueID)
	}
	if out == nil {
		out = []usecase.ExternalUser{}
	}
	return out, nil
}

func (c *Client) FetchLeagueRosters(ctx context.Context, leagueID string) ([]usecase.ExternalRoster, error) {
	path, err := leaguePath(leagueID, "/rosters")
	if err != nil {
		return nil, err
	}

	var out []usecase.ExternalRoster
	if err := c.getJSON(ctx, path, c.timeout, maxBodyBytes, &out); err != nil {
		return nil, crerr.Wrapf(err, "fetch league rosters league_id=%s", leagueID)
	}
	if out == nil {
		out = []usecase.ExternalRoster{}
	}
	return out, nil
}

func (c *Client) FetchAllPlayers(ctx context.Context) (usecase.PlayerCatalog, error) {
	var out usecase.PlayerCatalog
	if err := c.getJSON(ctx, "/players/nfl", c.playersTimeout, maxPlayersBodyBytes, &out); err != nil {
		return nil, crerr.Wrap(err, "fetch player catalog")
	}
	if out == nil {
		out = usecase.PlayerCatalog{}
	}
	for playerID, player := range out {
		if player.PlayerID == "" {
			player.PlayerID = fantasy.LooseString(playerID)
			out[playerID] = player
		}
	}
	return out, nil
}

func leaguePath(leagueID, suffix string) (string, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return "", fmt.Errorf("%w: league id is required", usecase.ErrInvalidInput)
	}
	return "/league/" + url.PathEscape(leagueID) + suffix, nil
}

func (c *Client) getJSON(ctx context.Context, path string, timeout time.Duration, limit int64, target any) error {
	out, err, _ := c.flight.Do(path, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, path, timeout, limit)
			return reqErr
		}, isSleeperCircuitFailure)
		if stderrors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request", "path", path)
			return nil, fmt.Errorf("%w: sleeper api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return raw, execErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode sleeper payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, path string, timeout time.Duration, limit int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "sleeper request failed", "path", path, "error", err)
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), errSleeperTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errSleeperTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := crerr.Newf("sleeper status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
		c.logger.WarnContext(ctx, "sleeper request returned non-success status", "path", path, "status", resp.StatusCode)
		if isRetryableStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errSleeperTransient)
		}
		return nil, statusErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("null"), nil
	}
	return raw, nil
}

func isSleeperCircuitFailure(err error) bool {
	return crerr.Is(err, errSleeperTransient)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > 256 {
		return body[:256] + "..."
	}
	return body
}
