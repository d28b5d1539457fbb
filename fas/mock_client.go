package fas

import (
	"context"
	"sync"
)

// A fake account-system client, for use in tests
type MockClient struct {
	mu     *sync.Mutex
	people []Person
	err    error
	calls  int
}

var _ Client = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{mu: &sync.Mutex{}}
}

func (c *MockClient) Insert(p Person) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.people = append(c.people, p)
}

// Fail makes every subsequent Search return err, simulating a transport or
// server failure.
func (c *MockClient) Fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.err = err
}

// Calls reports how many Search invocations the client has seen.
func (c *MockClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

// Search matches people whose nickname (or, for byEmail, email) equals the
// term. The response-level username comes from the first match, like the
// account system's response shape.
func (c *MockClient) Search(ctx context.Context, term string, creds Credentials, byEmail bool) (*SearchResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	resp := &SearchResponse{}
	for _, p := range c.people {
		if byEmail {
			if p.Email == term {
				resp.People = append(resp.People, p)
			}
		} else if p.IRCNick == term {
			resp.People = append(resp.People, p)
		}
	}
	if len(resp.People) > 0 {
		resp.Username = resp.People[0].Username
	}
	return resp, nil
}
