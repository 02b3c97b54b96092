// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/document"
	"github.com/taxflow-app/taxflow/gen/ent/entity"
	"github.com/taxflow-app/taxflow/gen/ent/household"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChecklistItem is the client for interacting with the ChecklistItem builders.
	ChecklistItem *ChecklistItemClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// Household is the client for interacting with the Household builders.
	Household *HouseholdClient
	// TaxYear is the client for interacting with the TaxYear builders.
	TaxYear *TaxYearClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChecklistItem = NewChecklistItemClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.Household = NewHouseholdClient(c.config)
	c.TaxYear = NewTaxYearClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ChecklistItem: NewChecklistItemClient(cfg),
		Document:      NewDocumentClient(cfg),
		Entity:        NewEntityClient(cfg),
		Household:     NewHouseholdClient(cfg),
		TaxYear:       NewTaxYearClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		ChecklistItem: NewChecklistItemClient(cfg),
		Document:      NewDocumentClient(cfg),
		Entity:        NewEntityClient(cfg),
		Household:     NewHouseholdClient(cfg),
		TaxYear:       NewTaxYearClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChecklistItem.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ChecklistItem.Use(hooks...)
	c.Document.Use(hooks...)
	c.Entity.Use(hooks...)
	c.Household.Use(hooks...)
	c.TaxYear.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ChecklistItem.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.Entity.Intercept(interceptors...)
	c.Household.Intercept(interceptors...)
	c.TaxYear.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChecklistItemMutation:
		return c.ChecklistItem.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *HouseholdMutation:
		return c.Household.mutate(ctx, m)
	case *TaxYearMutation:
		return c.TaxYear.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChecklistItemClient is a client for the ChecklistItem schema.
type ChecklistItemClient struct {
	config
}

// NewChecklistItemClient returns a client for the ChecklistItem from the given config.
func NewChecklistItemClient(c config) *ChecklistItemClient {
	return &ChecklistItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checklistitem.Hooks(f(g(h())))`.
func (c *ChecklistItemClient) Use(hooks ...Hook) {
	c.hooks.ChecklistItem = append(c.hooks.ChecklistItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checklistitem.Intercept(f(g(h())))`.
func (c *ChecklistItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChecklistItem = append(c.inters.ChecklistItem, interceptors...)
}

// Create returns a builder for creating a ChecklistItem entity.
func (c *ChecklistItemClient) Create() *ChecklistItemCreate {
	mutation := newChecklistItemMutation(c.config, OpCreate)
	return &ChecklistItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChecklistItem entities.
func (c *ChecklistItemClient) CreateBulk(builders ...*ChecklistItemCreate) *ChecklistItemCreateBulk {
	return &ChecklistItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChecklistItemClient) MapCreateBulk(slice any, setFunc func(*ChecklistItemCreate, int)) *ChecklistItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChecklistItemCreateBulk{err: fmt.Errorf("calling to ChecklistItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChecklistItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChecklistItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChecklistItem.
func (c *ChecklistItemClient) Update() *ChecklistItemUpdate {
	mutation := newChecklistItemMutation(c.config, OpUpdate)
	return &ChecklistItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChecklistItemClient) UpdateOne(_m *ChecklistItem) *ChecklistItemUpdateOne {
	mutation := newChecklistItemMutation(c.config, OpUpdateOne, withChecklistItem(_m))
	return &ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChecklistItemClient) UpdateOneID(id uuid.UUID) *ChecklistItemUpdateOne {
	mutation := newChecklistItemMutation(c.config, OpUpdateOne, withChecklistItemID(id))
	return &ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChecklistItem.
func (c *ChecklistItemClient) Delete() *ChecklistItemDelete {
	mutation := newChecklistItemMutation(c.config, OpDelete)
	return &ChecklistItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChecklistItemClient) DeleteOne(_m *ChecklistItem) *ChecklistItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChecklistItemClient) DeleteOneID(id uuid.UUID) *ChecklistItemDeleteOne {
	builder := c.Delete().Where(checklistitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChecklistItemDeleteOne{builder}
}

// Query returns a query builder for ChecklistItem.
func (c *ChecklistItemClient) Query() *ChecklistItemQuery {
	return &ChecklistItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChecklistItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ChecklistItem entity by its id.
func (c *ChecklistItemClient) Get(ctx context.Context, id uuid.UUID) (*ChecklistItem, error) {
	return c.Query().Where(checklistitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChecklistItemClient) GetX(ctx context.Context, id uuid.UUID) *ChecklistItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTaxYear queries the tax_year edge of a ChecklistItem.
func (c *ChecklistItemClient) QueryTaxYear(_m *ChecklistItem) *TaxYearQuery {
	query := (&TaxYearClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checklistitem.Table, checklistitem.FieldID, id),
			sqlgraph.To(taxyear.Table, taxyear.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checklistitem.TaxYearTable, checklistitem.TaxYearColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChecklistItemClient) Hooks() []Hook {
	return c.hooks.ChecklistItem
}

// Interceptors returns the client interceptors.
func (c *ChecklistItemClient) Interceptors() []Interceptor {
	return c.inters.ChecklistItem
}

func (c *ChecklistItemClient) mutate(ctx context.Context, m *ChecklistItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChecklistItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChecklistItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChecklistItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChecklistItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChecklistItem mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHousehold queries the household edge of a Document.
func (c *DocumentClient) QueryHousehold(_m *Document) *HouseholdQuery {
	query := (&HouseholdClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(household.Table, household.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.HouseholdTable, document.HouseholdColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTaxYear queries the tax_year edge of a Document.
func (c *DocumentClient) QueryTaxYear(_m *Document) *TaxYearQuery {
	query := (&TaxYearClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(taxyear.Table, taxyear.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.TaxYearTable, document.TaxYearColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntities queries the entities edge of a Document.
func (c *DocumentClient) QueryEntities(_m *Document) *EntityQuery {
	query := (&EntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(entity.Table, entity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.EntitiesTable, document.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id uuid.UUID) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id uuid.UUID) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id uuid.UUID) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id uuid.UUID) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Entity.
func (c *EntityClient) QueryDocument(_m *Entity) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entity.Table, entity.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entity.DocumentTable, entity.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// HouseholdClient is a client for the Household schema.
type HouseholdClient struct {
	config
}

// NewHouseholdClient returns a client for the Household from the given config.
func NewHouseholdClient(c config) *HouseholdClient {
	return &HouseholdClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `household.Hooks(f(g(h())))`.
func (c *HouseholdClient) Use(hooks ...Hook) {
	c.hooks.Household = append(c.hooks.Household, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `household.Intercept(f(g(h())))`.
func (c *HouseholdClient) Intercept(interceptors ...Interceptor) {
	c.inters.Household = append(c.inters.Household, interceptors...)
}

// Create returns a builder for creating a Household entity.
func (c *HouseholdClient) Create() *HouseholdCreate {
	mutation := newHouseholdMutation(c.config, OpCreate)
	return &HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Household entities.
func (c *HouseholdClient) CreateBulk(builders ...*HouseholdCreate) *HouseholdCreateBulk {
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HouseholdClient) MapCreateBulk(slice any, setFunc func(*HouseholdCreate, int)) *HouseholdCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HouseholdCreateBulk{err: fmt.Errorf("calling to HouseholdClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HouseholdCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Household.
func (c *HouseholdClient) Update() *HouseholdUpdate {
	mutation := newHouseholdMutation(c.config, OpUpdate)
	return &HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HouseholdClient) UpdateOne(_m *Household) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHousehold(_m))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HouseholdClient) UpdateOneID(id uuid.UUID) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHouseholdID(id))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Household.
func (c *HouseholdClient) Delete() *HouseholdDelete {
	mutation := newHouseholdMutation(c.config, OpDelete)
	return &HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HouseholdClient) DeleteOne(_m *Household) *HouseholdDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HouseholdClient) DeleteOneID(id uuid.UUID) *HouseholdDeleteOne {
	builder := c.Delete().Where(household.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HouseholdDeleteOne{builder}
}

// Query returns a query builder for Household.
func (c *HouseholdClient) Query() *HouseholdQuery {
	return &HouseholdQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHousehold},
		inters: c.Interceptors(),
	}
}

// Get returns a Household entity by its id.
func (c *HouseholdClient) Get(ctx context.Context, id uuid.UUID) (*Household, error) {
	return c.Query().Where(household.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HouseholdClient) GetX(ctx context.Context, id uuid.UUID) *Household {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTaxYears queries the tax_years edge of a Household.
func (c *HouseholdClient) QueryTaxYears(_m *Household) *TaxYearQuery {
	query := (&TaxYearClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(household.Table, household.FieldID, id),
			sqlgraph.To(taxyear.Table, taxyear.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, household.TaxYearsTable, household.TaxYearsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a Household.
func (c *HouseholdClient) QueryDocuments(_m *Household) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(household.Table, household.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, household.DocumentsTable, household.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HouseholdClient) Hooks() []Hook {
	return c.hooks.Household
}

// Interceptors returns the client interceptors.
func (c *HouseholdClient) Interceptors() []Interceptor {
	return c.inters.Household
}

func (c *HouseholdClient) mutate(ctx context.Context, m *HouseholdMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Household mutation op: %q", m.Op())
	}
}

// TaxYearClient is a client for the TaxYear schema.
type TaxYearClient struct {
	config
}

// NewTaxYearClient returns a client for the TaxYear from the given config.
func NewTaxYearClient(c config) *TaxYearClient {
	return &TaxYearClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taxyear.Hooks(f(g(h())))`.
func (c *TaxYearClient) Use(hooks ...Hook) {
	c.hooks.TaxYear = append(c.hooks.TaxYear, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taxyear.Intercept(f(g(h())))`.
func (c *TaxYearClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaxYear = append(c.inters.TaxYear, interceptors...)
}

// Create returns a builder for creating a TaxYear entity.
func (c *TaxYearClient) Create() *TaxYearCreate {
	mutation := newTaxYearMutation(c.config, OpCreate)
	return &TaxYearCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaxYear entities.
func (c *TaxYearClient) CreateBulk(builders ...*TaxYearCreate) *TaxYearCreateBulk {
	return &TaxYearCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaxYearClient) MapCreateBulk(slice any, setFunc func(*TaxYearCreate, int)) *TaxYearCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaxYearCreateBulk{err: fmt.Errorf("calling to TaxYearClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaxYearCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaxYearCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaxYear.
func (c *TaxYearClient) Update() *TaxYearUpdate {
	mutation := newTaxYearMutation(c.config, OpUpdate)
	return &TaxYearUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaxYearClient) UpdateOne(_m *TaxYear) *TaxYearUpdateOne {
	mutation := newTaxYearMutation(c.config, OpUpdateOne, withTaxYear(_m))
	return &TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaxYearClient) UpdateOneID(id uuid.UUID) *TaxYearUpdateOne {
	mutation := newTaxYearMutation(c.config, OpUpdateOne, withTaxYearID(id))
	return &TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaxYear.
func (c *TaxYearClient) Delete() *TaxYearDelete {
	mutation := newTaxYearMutation(c.config, OpDelete)
	return &TaxYearDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaxYearClient) DeleteOne(_m *TaxYear) *TaxYearDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaxYearClient) DeleteOneID(id uuid.UUID) *TaxYearDeleteOne {
	builder := c.Delete().Where(taxyear.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaxYearDeleteOne{builder}
}

// Query returns a query builder for TaxYear.
func (c *TaxYearClient) Query() *TaxYearQuery {
	return &TaxYearQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaxYear},
		inters: c.Interceptors(),
	}
}

// Get returns a TaxYear entity by its id.
func (c *TaxYearClient) Get(ctx context.Context, id uuid.UUID) (*TaxYear, error) {
	return c.Query().Where(taxyear.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaxYearClient) GetX(ctx context.Context, id uuid.UUID) *TaxYear {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHousehold queries the household edge of a TaxYear.
func (c *TaxYearClient) QueryHousehold(_m *TaxYear) *HouseholdQuery {
	query := (&HouseholdClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxyear.Table, taxyear.FieldID, id),
			sqlgraph.To(household.Table, household.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taxyear.HouseholdTable, taxyear.HouseholdColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a TaxYear.
func (c *TaxYearClient) QueryDocuments(_m *TaxYear) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxyear.Table, taxyear.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxyear.DocumentsTable, taxyear.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChecklistItems queries the checklist_items edge of a TaxYear.
func (c *TaxYearClient) QueryChecklistItems(_m *TaxYear) *ChecklistItemQuery {
	query := (&ChecklistItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taxyear.Table, taxyear.FieldID, id),
			sqlgraph.To(checklistitem.Table, checklistitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taxyear.ChecklistItemsTable, taxyear.ChecklistItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaxYearClient) Hooks() []Hook {
	return c.hooks.TaxYear
}

// Interceptors returns the client interceptors.
func (c *TaxYearClient) Interceptors() []Interceptor {
	return c.inters.TaxYear
}

func (c *TaxYearClient) mutate(ctx context.Context, m *TaxYearMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaxYearCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaxYearUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaxYearUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaxYearDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaxYear mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChecklistItem, Document, Entity, Household, TaxYear []ent.Hook
	}
	inters struct {
		ChecklistItem, Document, Entity, Household, TaxYear []ent.Interceptor
	}
)
