package design

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"goa.design/goa/v3/eval"
	"goa.design/goa/v3/expr"

	"sankalp/internal/server"
	"sankalp/internal/submission"
)

var (
	evalOnce sync.Once
	evalErr  error
)

// runDSL evaluates the design once per test binary; a second run would
// register every route again.
func runDSL(t *testing.T) {
	t.Helper()
	evalOnce.Do(func() { evalErr = eval.RunDSL() })
	require.NoError(t, evalErr)
}

func TestDesignEvaluates(t *testing.T) {
	runDSL(t)

	assert.Equal(t, "sankalp", expr.Root.API.Name)

	routes := map[string]string{
		"contact":    "/api/contact",
		"admissions": "/api/admissions",
		"events":     "/api/events/register",
		"newsletter": "/api/newsletter",
		"reviews":    "/api/reviews",
	}
	for name, path := range routes {
		t.Run(name, func(t *testing.T) {
			svc := expr.Root.Service(name)
			require.NotNil(t, svc)
			require.NotNil(t, svc.Method("submit"))
			require.NotNil(t, svc.Method("list"))

			httpSvc := expr.Root.API.HTTP.Service(name)
			require.NotNil(t, httpSvc)
			submit := httpSvc.Endpoint("submit")
			require.NotNil(t, submit)
			require.Len(t, submit.Routes, 1)
			assert.Equal(t, "POST", submit.Routes[0].Method)
			assert.Equal(t, path, submit.Routes[0].Path)

			list := httpSvc.Endpoint("list")
			require.NotNil(t, list)
			assert.Equal(t, "GET", list.Routes[0].Method)
		})
	}

	require.NotNil(t, expr.Root.Service("health"))
}

func TestDesignMatchesServer(t *testing.T) {
	runDSL(t)

	var submitPaths []string
	for _, svc := range expr.Root.API.HTTP.Services {
		if e := svc.Endpoint("submit"); e != nil {
			submitPaths = append(submitPaths, e.Routes[0].Path)
		}
	}
	assert.ElementsMatch(t, server.FormPaths(), submitPaths)

	for _, name := range []string{"ContactPayload", "AdmissionPayload", "EventPayload"} {
		t.Run(name, func(t *testing.T) {
			obj := expr.AsObject(expr.Root.UserType(name).Attribute().Type)
			require.NotNil(t, obj)
			assert.Equal(t, submission.EmailPattern, obj.Attribute("email").Validation.Pattern)
			assert.Equal(t, submission.PhonePattern, obj.Attribute("phone").Validation.Pattern)
		})
	}
}
