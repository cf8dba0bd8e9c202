package care_api

import (
	"carehome-service/internal/app/services/shared/session"
	"carehome-service/internal/pkg/constvars"
	"context"
	"net/url"

	"go.uber.org/zap"
)

// resourceClient covers the plain REST shape shared by every care resource:
// /{resource}, /{resource}/{id}.
type resourceClient[T any] struct {
	Transport *Transport
	Resource  string
	Log       *zap.Logger
}

func newResourceClient[T any](transport *Transport, resource string, logger *zap.Logger) *resourceClient[T] {
	return &resourceClient[T]{
		Transport: transport,
		Resource:  resource,
		Log:       logger,
	}
}

func (c *resourceClient[T]) path() string {
	return "/" + c.Resource
}

func (c *resourceClient[T]) itemPath(id string) string {
	return "/" + c.Resource + "/" + url.PathEscape(id)
}

func (c *resourceClient[T]) list(ctx context.Context, sess *session.Session, query url.Values) ([]T, error) {
	items := make([]T, 0)
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodGet,
		Path:     c.path(),
		Query:    query,
		Resource: c.Resource,
		Session:  sess,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *resourceClient[T]) get(ctx context.Context, sess *session.Session, id string) (*T, error) {
	item := new(T)
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodGet,
		Path:     c.itemPath(id),
		Resource: c.Resource,
		Session:  sess,
	}, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *resourceClient[T]) create(ctx context.Context, sess *session.Session, body interface{}) (*T, error) {
	item := new(T)
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPost,
		Path:     c.path(),
		Body:     body,
		Resource: c.Resource,
		Session:  sess,
	}, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *resourceClient[T]) update(ctx context.Context, sess *session.Session, id string, body interface{}) (*T, error) {
	item := new(T)
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodPatch,
		Path:     c.itemPath(id),
		Body:     body,
		Resource: c.Resource,
		Session:  sess,
	}, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *resourceClient[T]) delete(ctx context.Context, sess *session.Session, id string) error {
	_, err := c.Transport.Do(ctx, Call{
		Method:   constvars.MethodDelete,
		Path:     c.itemPath(id),
		Resource: c.Resource,
		Session:  sess,
	}, nil)
	return err
}

func patientQuery(patientID string) url.Values {
	if patientID == "" {
		return nil
	}
	return url.Values{constvars.QueryParamPatientID: []string{patientID}}
}
