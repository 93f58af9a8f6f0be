// Package client runs CIM-XML operations against a CIMOM.
//
// A Client writes the operations with the request builders, exchanges
// the message text through a transport.Exchanger and decodes the
// response into a batch.Batch.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/andaru/cimxml/batch"
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/envelope"
	"github.com/andaru/cimxml/reader"
	"github.com/andaru/cimxml/request"
	"github.com/andaru/cimxml/transport"
	"github.com/andaru/cimxml/writer"
)

// Option is a Client option function
type Option func(*Client)

// WithExchanger sets the transport, replacing the HTTP exchanger built
// from the configuration
func WithExchanger(x transport.Exchanger) Option { return func(c *Client) { c.x = x } }

// WithSequence sets the message ID sequence
func WithSequence(seq writer.Sequence) Option { return func(c *Client) { c.seq = seq } }

// WithProgress sets a decode progress observer
func WithProgress(fn func(percent int)) Option { return func(c *Client) { c.progress = fn } }

// Client is a CIM-XML client, safe for concurrent use
type Client struct {
	cfg      Config
	x        transport.Exchanger
	seq      writer.Sequence
	progress func(percent int)
	classes  *lru.Cache[string, *cim.Class]
}

// New returns a new Client
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.setDefaults()
	c := &Client{cfg: cfg, seq: writer.DefaultSequence}
	for _, opt := range opts {
		opt(c)
	}
	if c.x == nil {
		var hopts []transport.HTTPOption
		if cfg.Username != "" {
			hopts = append(hopts, transport.WithBasicAuth(cfg.Username, cfg.Password))
		}
		hopts = append(hopts, transport.WithTimeout(cfg.Timeout))
		h, err := transport.NewHTTP(cfg.URL, hopts...)
		if err != nil {
			return nil, err
		}
		c.x = h
	}
	if cfg.ClassCacheSize > 0 {
		cache, err := lru.New[string, *cim.Class](cfg.ClassCacheSize)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		c.classes = cache
	}
	return c, nil
}

// Namespace returns the default namespace
func (c *Client) Namespace() string { return c.cfg.Namespace }

// Do sends ops in one message and returns the decoded responses, one per
// operation. CIMOM errors are returned in the batch, not as an error.
func (c *Client) Do(ctx context.Context, ops ...request.Operation) (*batch.Batch, error) {
	corr := uuid.New().String()
	w := writer.New(writer.WithSequence(c.seq), writer.WithProtocolVersion(c.cfg.ProtocolVersion))
	if err := request.Batch(w, c.cfg.Namespace, ops...); err != nil {
		return nil, err
	}
	text, err := w.Text()
	if err != nil {
		return nil, err
	}
	reqEnv, err := envelope.Inspect(text)
	if err != nil {
		return nil, err
	}
	req := &transport.Request{Body: text, Batch: reqEnv.Multiple, ProtocolVersion: c.cfg.ProtocolVersion}
	if !req.Batch && len(reqEnv.Calls) == 1 {
		req.Method, req.Object = reqEnv.Calls[0].Method, reqEnv.Calls[0].Object
	}
	c.invalidate(ops)

	glog.V(1).Infof("cim-xml %s: message %s: %s", corr, w.ID(), methods(reqEnv))
	resp, err := c.x.Exchange(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "exchange %s", corr)
	}
	glog.V(2).Infof("cim-xml %s: response of %d bytes", corr, len(resp))

	rspEnv, err := envelope.Inspect(resp)
	if err != nil {
		return nil, err
	}
	switch {
	case rspEnv.MessageID != w.ID():
		return nil, errors.Errorf("cim-xml %s: response message id %q does not match request %q", corr, rspEnv.MessageID, w.ID())
	case len(rspEnv.Calls) != len(ops):
		return nil, errors.Errorf("cim-xml %s: %d responses for %d requests", corr, len(rspEnv.Calls), len(ops))
	}

	var ropts []reader.Option
	if c.progress != nil {
		ropts = append(ropts, reader.WithProgress(c.progress))
	}
	b, err := batch.Decode(resp, ropts...)
	if err != nil {
		return nil, errors.Wrapf(err, "cim-xml %s", corr)
	}
	for _, r := range b.Responses {
		if r.Error != nil {
			glog.V(1).Infof("cim-xml %s: %s: %s", corr, r.MethodName, r.Error)
		}
	}
	return b, nil
}

func methods(env *envelope.Envelope) string {
	names := make([]string, len(env.Calls))
	for i, call := range env.Calls {
		names[i] = call.Method
	}
	return strings.Join(names, ",")
}

// invalidate drops cached classes when ops change class definitions
func (c *Client) invalidate(ops []request.Operation) {
	if c.classes == nil {
		return
	}
	for _, op := range ops {
		switch op.(type) {
		case request.CreateClassSettings, request.ModifyClassSettings, request.DeleteClassSettings:
			c.classes.Purge()
			return
		}
	}
}

// one runs a single operation and returns its response or CIMOM error
func (c *Client) one(ctx context.Context, op request.Operation) (*batch.Response, error) {
	b, err := c.Do(ctx, op)
	if err != nil {
		return nil, err
	}
	r := b.Responses[0]
	return r, r.Err()
}

func classKey(ns string, s request.GetClassSettings) string {
	if s.Namespace != "" {
		ns = s.Namespace
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%t|%q", strings.ToLower(ns), strings.ToLower(s.ClassName.String()),
		s.LocalOnly, s.IncludeQualifiers, s.IncludeClassOrigin, s.PropertyList == nil, s.PropertyList)
}

// GetClass returns one class definition, from the cache when enabled.
// The caller owns the returned class; the cache keeps its own copy.
func (c *Client) GetClass(ctx context.Context, s request.GetClassSettings) (*cim.Class, error) {
	key := classKey(c.cfg.Namespace, s)
	if c.classes != nil {
		if class, ok := c.classes.Get(key); ok {
			glog.V(2).Infof("cim-xml: class cache hit %s", key)
			return class.Clone(), nil
		}
	}
	r, err := c.one(ctx, s)
	if err != nil {
		return nil, err
	}
	classes, ok := r.Value.(batch.ClassList)
	if !ok || len(classes) != 1 {
		return nil, errors.Errorf("GetClass %s: expected one class", s.ClassName)
	}
	if c.classes != nil {
		c.classes.Add(key, classes[0].Clone())
	}
	return classes[0], nil
}

// GetInstance returns one instance
func (c *Client) GetInstance(ctx context.Context, s request.GetInstanceSettings) (*cim.Instance, error) {
	r, err := c.one(ctx, s)
	if err != nil {
		return nil, err
	}
	instances, ok := r.Value.(batch.InstanceList)
	if !ok || len(instances) != 1 {
		return nil, errors.Errorf("GetInstance %s: expected one instance", s.InstanceName.ClassName)
	}
	return instances[0], nil
}

// EnumerateInstances returns the instances of a class
func (c *Client) EnumerateInstances(ctx context.Context, s request.EnumerateInstancesSettings) ([]*cim.Instance, error) {
	r, err := c.one(ctx, s)
	if err != nil || r.Value == nil {
		return nil, err
	}
	instances, ok := r.Value.(batch.InstanceList)
	if !ok {
		return nil, errors.Errorf("EnumerateInstances %s: unexpected %T result", s.ClassName, r.Value)
	}
	return instances, nil
}

// EnumerateInstanceNames returns the instance names of a class
func (c *Client) EnumerateInstanceNames(ctx context.Context, s request.EnumerateInstanceNamesSettings) ([]*cim.InstanceName, error) {
	r, err := c.one(ctx, s)
	if err != nil || r.Value == nil {
		return nil, err
	}
	names, ok := r.Value.(batch.InstanceNameList)
	if !ok {
		return nil, errors.Errorf("EnumerateInstanceNames %s: unexpected %T result", s.ClassName, r.Value)
	}
	return names, nil
}

// InvokeMethod calls an extrinsic method
func (c *Client) InvokeMethod(ctx context.Context, s request.InvokeMethodSettings) (*cim.MethodResponse, error) {
	r, err := c.one(ctx, s)
	if err != nil {
		return nil, err
	}
	if r.Method == nil {
		return nil, errors.Errorf("%s: no method response", s.Method)
	}
	return r.Method, nil
}
