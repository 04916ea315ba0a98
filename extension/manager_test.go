package extension

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data/datatest"
	"github.com/milindvishnoi/FSND/extension/registry"
	"github.com/milindvishnoi/FSND/extension/types"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name     string
	initErr  error
	inited   bool
	seeded   int
	cleaned  bool
	tableSet []*schema.Table
}

func (f *fakeModule) Name() string    { return f.name }
func (f *fakeModule) Version() string { return "0.1.0" }
func (f *fakeModule) GetMetadata() types.Metadata {
	return types.Metadata{Name: f.name, Version: f.Version()}
}
func (f *fakeModule) Init(*types.Deps) error {
	f.inited = true
	return f.initErr
}
func (f *fakeModule) Tables() []*schema.Table { return f.tableSet }
func (f *fakeModule) Seed(context.Context) error {
	f.seeded++
	return nil
}
func (f *fakeModule) RegisterRoutes(r *gin.Engine) {
	r.GET("/"+f.name, func(c *gin.Context) { c.String(http.StatusOK, f.name) })
}
func (f *fakeModule) Cleanup() error {
	f.cleaned = true
	return nil
}

func setup(t *testing.T, modules ...*fakeModule) {
	t.Helper()
	registry.ClearRegistry()
	t.Cleanup(registry.ClearRegistry)
	for _, m := range modules {
		registry.Register(m)
	}
}

func TestManager_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	table := schema.NewTable("widgets").
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})
	a := &fakeModule{name: "alpha", tableSet: []*schema.Table{table}}
	b := &fakeModule{name: "beta"}
	setup(t, a, b)

	d := datatest.New(t)
	m := NewManager(&config.Config{Modules: []string{"beta", "alpha"}}, d, nil)

	require.NoError(t, m.InitExtensions(context.Background()))
	assert.True(t, a.inited)
	assert.Error(t, m.InitExtensions(context.Background()))

	names := []string{}
	for _, md := range m.GetMetadata() {
		names = append(names, md.Name)
	}
	assert.Equal(t, []string{"beta", "alpha"}, names)

	require.NoError(t, m.Migrate(context.Background()))
	require.NoError(t, m.Seed(context.Background()))
	assert.Equal(t, 1, a.seeded)

	r := gin.New()
	m.RegisterRoutes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/alpha", nil))
	assert.Equal(t, "alpha", w.Body.String())

	_, err := m.GetExtension("beta")
	assert.NoError(t, err)
	_, err = m.GetExtension("gamma")
	assert.Error(t, err)

	m.Cleanup()
	assert.True(t, a.cleaned)
	assert.True(t, b.cleaned)
	assert.Empty(t, m.GetExtensions())
}

func TestManager_UnknownModule(t *testing.T) {
	setup(t, &fakeModule{name: "alpha"})
	m := NewManager(&config.Config{Modules: []string{"alpha", "missing"}}, datatest.New(t), nil)
	assert.Error(t, m.InitExtensions(context.Background()))
}

func TestManager_InitFailure(t *testing.T) {
	setup(t, &fakeModule{name: "alpha", initErr: errors.New("boom")})
	m := NewManager(&config.Config{}, datatest.New(t), nil)
	err := m.InitExtensions(context.Background())
	assert.ErrorContains(t, err, "boom")
}
