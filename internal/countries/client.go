package countries

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	graphql "github.com/hasura/go-graphql-client"
	"go.uber.org/zap"

	"countryexplorer/internal/domain"
)

// OperationName is the name sent with the countries query
const OperationName = "GetCountries"

// Fetcher fetches the full list of countries
type Fetcher interface {
	FetchCountries(ctx context.Context) ([]domain.Country, error)
}

// QueryError carries the messages of a GraphQL error response.
// Its text is the messages joined by "; ".
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// countriesQuery mirrors `query GetCountries { countries { code name } }`
type countriesQuery struct {
	Countries []struct {
		Code string `graphql:"code"`
		Name string `graphql:"name"`
	} `graphql:"countries"`
}

// Client queries a GraphQL endpoint for countries
type Client struct {
	endpoint string
	gql      *graphql.Client
	logger   *zap.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// WithHTTPClient replaces the default pooled HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// NewClient creates a client for the given endpoint
func NewClient(endpoint string, opts ...Option) *Client {
	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = cleanhttp.DefaultPooledClient()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Client{
		endpoint: endpoint,
		gql:      graphql.NewClient(endpoint, o.httpClient),
		logger:   o.logger,
	}
}

// FetchCountries issues the countries query once. It is never retried.
func (c *Client) FetchCountries(ctx context.Context) ([]domain.Country, error) {
	start := time.Now()
	c.logger.Debug("Fetching countries", zap.String("endpoint", c.endpoint))

	var q countriesQuery
	if err := c.gql.Query(ctx, &q, nil, graphql.OperationName(OperationName)); err != nil {
		err = flattenError(err)
		c.logger.Warn("Countries query failed",
			zap.String("endpoint", c.endpoint),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	result := make([]domain.Country, 0, len(q.Countries))
	for _, country := range q.Countries {
		result = append(result, domain.Country{Code: country.Code, Name: country.Name})
	}

	c.logger.Info("Fetched countries",
		zap.String("endpoint", c.endpoint),
		zap.Int("count", len(result)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// flattenError turns a GraphQL error list into a QueryError so the message
// shown to the user is the server's text rather than the client's debug format
func flattenError(err error) error {
	var gqlErrs graphql.Errors
	if !errors.As(err, &gqlErrs) || len(gqlErrs) == 0 {
		return err
	}

	messages := make([]string, 0, len(gqlErrs))
	for _, e := range gqlErrs {
		messages = append(messages, e.Message)
	}
	return &QueryError{Messages: messages}
}
