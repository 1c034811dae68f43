package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocql/gocql"
)

// CassandraConfig holds the connection settings for the wide-column backend.
type CassandraConfig struct {
	Hosts       []string
	Keyspace    string
	User        string
	Password    string
	Consistency string
	Timeout     time.Duration
}

// NewCassandraSession opens a session against the configured cluster.
func NewCassandraSession(cfg CassandraConfig) (*gocql.Session, error) {
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("cassandra hosts are not configured")
	}
	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.LocalQuorum
	if cfg.Consistency != "" {
		consistency, err := gocql.ParseConsistencyWrapper(strings.ToUpper(cfg.Consistency))
		if err != nil {
			return nil, fmt.Errorf("parse cassandra consistency: %w", err)
		}
		cluster.Consistency = consistency
	}
	if cfg.Timeout > 0 {
		cluster.Timeout = cfg.Timeout
		cluster.ConnectTimeout = cfg.Timeout
	}
	if cfg.User != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{Username: cfg.User, Password: cfg.Password}
	}
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("create cassandra session: %w", err)
	}
	return session, nil
}

// cqlPage asks for one page of at most Size rows resuming at State.
// A zero Size reads every row.
type cqlPage struct {
	Size  int
	State []byte
}

// cqlRunner is the subset of CQL execution the catalog needs.
type cqlRunner interface {
	Select(ctx context.Context, stmt string, values []interface{}, page cqlPage) ([]map[string]interface{}, []byte, error)
	Exec(ctx context.Context, stmt string, values ...interface{}) error
}

type gocqlRunner struct {
	session *gocql.Session
}

// NewCQLRunner adapts a gocql session.
func NewCQLRunner(session *gocql.Session) cqlRunner {
	return &gocqlRunner{session: session}
}

func (r *gocqlRunner) Select(ctx context.Context, stmt string, values []interface{}, page cqlPage) ([]map[string]interface{}, []byte, error) {
	q := r.session.Query(stmt, values...).WithContext(ctx)
	if page.Size > 0 {
		// Setting the page state turns off automatic paging, so the iterator
		// stops after one page.
		q = q.PageSize(page.Size).PageState(page.State)
	}
	iter := q.Iter()
	next := iter.PageState()

	rows := []map[string]interface{}{}
	for {
		row := map[string]interface{}{}
		if !iter.MapScan(row) {
			break
		}
		rows = append(rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, nil, err
	}
	return rows, next, nil
}

func (r *gocqlRunner) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	return r.session.Query(stmt, values...).WithContext(ctx).Exec()
}
