package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSchemas(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"widget.go", "order_item.go", "index.go", "widget_test.go", "README.md"} {
		writeFile(t, filepath.Join(dir, name), "package schema\n")
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.go"), 0755))

	names, err := ScanSchemas(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"widget", "order_item"}, names)

	names, err = ScanSchemas(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestScanRoutes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "widget", "widget_route.go"), "package widget\n")
	writeFile(t, filepath.Join(dir, "order_item", "order_item_route.go"), "package orderitem\n")
	writeFile(t, filepath.Join(dir, "auth", "auth_route.go"), "package auth\n")
	writeFile(t, filepath.Join(dir, "gadget", "gadget_service.go"), "package gadget\n")
	writeFile(t, filepath.Join(dir, "stray_route.go"), "package modules\n")

	routes, err := ScanRoutes(dir, "example.com/shop/app/modules")
	require.NoError(t, err)

	assert.ElementsMatch(t, []RouteInfo{
		{ModuleName: "auth", RoutePath: "/auth", ImportIdentifier: "auth", ImportPath: "example.com/shop/app/modules/auth"},
		{ModuleName: "order_item", RoutePath: "/order_items", ImportIdentifier: "orderitem", ImportPath: "example.com/shop/app/modules/order_item"},
		{ModuleName: "widget", RoutePath: "/widgets", ImportIdentifier: "widget", ImportPath: "example.com/shop/app/modules/widget"},
	}, routes)

	routes, err = ScanRoutes(filepath.Join(dir, "missing"), "example.com/shop/app/modules")
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRouteInfoImportAlias(t *testing.T) {
	assert.Equal(t, "", RouteInfo{ImportIdentifier: "widget", ImportPath: "example.com/shop/app/modules/widget"}.ImportAlias())
	assert.Equal(t, "orderitem", RouteInfo{ImportIdentifier: "orderitem", ImportPath: "example.com/shop/app/modules/order_item"}.ImportAlias())
}

func TestUpdateSchemaIndex(t *testing.T) {
	file := filepath.Join(t.TempDir(), "schema", "index.go")
	writeFile(t, file, "stale content")

	require.NoError(t, UpdateSchemaIndex(file, []string{"widget", "order_item"}))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, generatedNotice+`

package schema

// Models returns one zero value of every generated schema, for migrations.
func Models() []interface{} {
	return []interface{}{
		&Widget{},
		&OrderItem{},
	}
}
`, string(b))
	requireGoSource(t, string(b))
}

func TestUpdateSchemaIndexMatchesCheckedInIndex(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("app", "schema", "index.go"))
	require.NoError(t, err)

	names, err := ScanSchemas(filepath.Join("app", "schema"))
	require.NoError(t, err)
	assert.Equal(t, []string{"category", "customer", "product", "user"}, names)

	file := filepath.Join(t.TempDir(), "schema", "index.go")
	require.NoError(t, UpdateSchemaIndex(file, names))

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRenderRouteRegistration(t *testing.T) {
	block, err := renderRouteRegistration([]RouteInfo{
		{ModuleName: "widget", RoutePath: "/widgets", ImportIdentifier: "widget", ImportPath: "example.com/shop/app/modules/widget"},
		{ModuleName: "order_item", RoutePath: "/order_items", ImportIdentifier: "orderitem", ImportPath: "example.com/shop/app/modules/order_item"},
	})
	require.NoError(t, err)

	assert.Equal(t, `
import (
	"example.com/shop/app/modules/widget"
	orderitem "example.com/shop/app/modules/order_item"
)

// registerRoutes mounts every generated module router.
func registerRoutes(r chi.Router, deps *modelutil.Deps) {
	r.Mount("/widgets", widget.Routes(deps))
	r.Mount("/order_items", orderitem.Routes(deps))
}
`, block)

	empty, err := renderRouteRegistration(nil)
	require.NoError(t, err)
	assert.NotContains(t, empty, "import")
	assert.Contains(t, empty, "func registerRoutes(r chi.Router, deps *modelutil.Deps) {\n}\n")
}

func TestPatchRegionPreservesOutside(t *testing.T) {
	before := "package app\n\nimport \"fmt\"\n\n// hand written\nvar a = 1\n\n" + autoRegisterStart
	after := autoRegisterEnd + "\n\n// also hand written\nfunc b() { fmt.Println(a) }\n"
	stale := "\nimport \"example.com/old/modules/gone\"\n\nfunc registerRoutes() { gone.Routes() }\n"

	out, err := patchRegion(before+stale+after, "\nNEW\n")
	require.NoError(t, err)

	assert.Equal(t, before+"\nNEW\n"+after, out)
	assert.True(t, strings.HasPrefix(out, before))
	assert.True(t, strings.HasSuffix(out, after))
}

func TestPatchRegionOnlyFirstPair(t *testing.T) {
	content := autoRegisterStart + "one" + autoRegisterEnd + "\n" + autoRegisterStart + "two" + autoRegisterEnd

	out, err := patchRegion(content, "new")
	require.NoError(t, err)
	assert.Equal(t, autoRegisterStart+"new"+autoRegisterEnd+"\n"+autoRegisterStart+"two"+autoRegisterEnd, out)
}

func TestPatchRegionLoneMarker(t *testing.T) {
	for _, testCase := range []struct {
		name    string
		content string
	}{
		{"start only", "package app\n\n" + autoRegisterStart + "\n"},
		{"end only", "package app\n\n" + autoRegisterEnd + "\n"},
		{"end before start", "package app\n\n" + autoRegisterEnd + "\n" + autoRegisterStart + "\n"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := patchRegion(testCase.content, "x")
			require.Error(t, err)
		})
	}
}

func TestPatchRegionInsertsAfterImports(t *testing.T) {
	content := "package app\n\nimport (\n\t\"net/http\"\n)\n\nfunc handler(w http.ResponseWriter, r *http.Request) {}\n"

	out, err := patchRegion(content, "\nBLOCK\n")
	require.NoError(t, err)

	assert.Equal(t, "package app\n\nimport (\n\t\"net/http\"\n)\n\n"+autoRegisterStart+"\nBLOCK\n"+autoRegisterEnd+"\n\nfunc handler(w http.ResponseWriter, r *http.Request) {}\n", out)

	again, err := patchRegion(out, "\nBLOCK\n")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, 1, strings.Count(again, autoRegisterStart))
}

func TestPatchRegionInsertsAfterPackageClause(t *testing.T) {
	out, err := patchRegion("package app\n\nvar x = 1\n", "\nBLOCK\n")
	require.NoError(t, err)
	assert.Equal(t, "package app\n\n"+autoRegisterStart+"\nBLOCK\n"+autoRegisterEnd+"\n\nvar x = 1\n", out)
}

func TestPatchRegionAppendsToUnparsableFile(t *testing.T) {
	out, err := patchRegion("not go at all", "\nBLOCK\n")
	require.NoError(t, err)
	assert.Equal(t, "not go at all\n\n"+autoRegisterStart+"\nBLOCK\n"+autoRegisterEnd+"\n", out)
}

func TestUpdateRouterFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "router.go")
	writeFile(t, file, `package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/shop/modelutil"
)

`+autoRegisterStart+`
func registerRoutes(r chi.Router, deps *modelutil.Deps) {
	r.Mount("/gadgets", gadget.Routes(deps))
}
`+autoRegisterEnd+`

func NewRouter(deps *modelutil.Deps) http.Handler {
	r := chi.NewRouter()
	registerRoutes(r, deps)
	return r
}
`)

	routes := []RouteInfo{{ModuleName: "widget", RoutePath: "/widgets", ImportIdentifier: "widget", ImportPath: "example.com/shop/app/modules/widget"}}
	require.NoError(t, UpdateRouterFile(file, routes))

	b, err := os.ReadFile(file)
	require.NoError(t, err)

	out := string(b)
	requireGoSource(t, out)
	assert.NotContains(t, out, "gadget")
	assert.Contains(t, out, "\t\"example.com/shop/app/modules/widget\"")
	assert.Contains(t, out, "\tr.Mount(\"/widgets\", widget.Routes(deps))")
	assert.Contains(t, out, "func NewRouter(deps *modelutil.Deps) http.Handler {")
}

func TestUpdateRouterFileMissing(t *testing.T) {
	require.Error(t, UpdateRouterFile(filepath.Join(t.TempDir(), "router.go"), nil))
}

func TestCheckedInRouterIsStable(t *testing.T) {
	b, err := os.ReadFile(filepath.Join("app", "router.go"))
	require.NoError(t, err)

	routes, err := ScanRoutes(filepath.Join("app", "modules"), "movingdata.com/p/apiscaffold/app/modules")
	require.NoError(t, err)
	require.Len(t, routes, 4)
	assert.Equal(t, "/auth", routes[0].RoutePath)

	block, err := renderRouteRegistration(routes)
	require.NoError(t, err)

	out, err := patchRegion(string(b), block)
	require.NoError(t, err)
	assert.Equal(t, string(b), out)
}
