package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeToken = "7|cli-token"

// newFakeAPI serves the subset of the coaching API the CLI talks to. Routes needing a session
// answer 401 unless the bearer token is fakeToken.
func newFakeAPI(t *testing.T, overrides map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+fakeToken {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
				return
			}
			next(w, r)
		}
	}
	writeBody := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}

	routes := map[string]http.HandlerFunc{
		"POST /api/login": func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Password != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Identifiants incorrects"}`))
				return
			}
			writeBody(`{"user":{"id":7,"nom":"Martin","prenom":"Léa","email":"`+body.Email+`"},"access_token":"`+fakeToken+`"}`)(w, r)
		},
		"POST /api/logout":              authed(writeBody(`{}`)),
		"GET /api/me":                   authed(writeBody(`{"id":7,"nom":"Martin","prenom":"Léa","email":"lea@example.com","role":"coache"}`)),
		"GET /api/coaches":              writeBody(`[{"id":1,"nom":"Durand","prenom":"Claire","rating":4.5,"coursCount":12},{"id":2,"nom":"Petit","prenom":"Marc","rating":3}]`),
		"GET /api/coaches/1":            writeBody(`{"id":1,"nom":"Durand","prenom":"Claire","rating":4.5}`),
		"GET /api/coaches/1/reviews":    writeBody(`[{"id":10,"coach_id":1,"rating":5,"description":"Excellente coach"}]`),
		"POST /api/coaches/1/reviews":   authed(writeBody(`{"id":11,"coach_id":1,"user_id":7,"rating":4,"description":"Très bien"}`)),
		"GET /api/plans":                writeBody(`[{"id":1,"titre":"Sommeil","prix":49,"duree":4}]`),
		"GET /api/plans/1":              writeBody(`{"id":1,"titre":"Sommeil","prix":49,"duree":4}`),
		"GET /api/resources":            writeBody(`[{"id":3,"titre":"Respiration","type":"audio"}]`),
		"GET /api/resources/3":          writeBody(`{"id":3,"titre":"Respiration","type":"audio","url":"https://cdn.example.com/3.mp3"}`),
		"GET /api/zoom/meetings":        authed(writeBody(`[{"id":5,"topic":"Bilan mensuel","start_time":"2030-01-01T10:00:00Z","duration":45,"status":"scheduled"}]`)),
		"POST /api/zoom/meetings":       authed(writeBody(`{"id":6,"topic":"Point d'étape","start_time":"2030-01-02T10:00:00Z","duration":30,"guest_id":12,"status":"scheduled"}`)),
		"GET /api/zoom/meetings/5/join": authed(writeBody(`{"id":5,"topic":"Bilan mensuel","join_url":"https://zoom.us/j/555"}`)),
		"GET /api/zoom/token":           authed(writeBody(`{"token":"sdk-token"}`)),
		"POST /api/user/profile/update": authed(writeBody(`{"id":7,"nom":"Martin","prenom":"Léa","email":"lea@example.com","telephone":"0611223344"}`)),
	}
	for route, handler := range overrides {
		routes[route] = handler
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestCoachesListJSONOutput(t *testing.T) {
	server := newFakeAPI(t, nil)

	stdout, _, err := executeCLI(t, t.TempDir(), server.URL, "coaches", "list", "--json")
	require.NoError(t, err)

	var coaches []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &coaches))
	require.Len(t, coaches, 2)
	assert.Equal(t, "Claire", coaches[0]["prenom"])
}

func TestCoachesListRendersForTerminal(t *testing.T) {
	server := newFakeAPI(t, nil)

	stdout, _, err := executeCLI(t, t.TempDir(), server.URL, "coaches", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "coachs: 2")
	assert.Contains(t, stdout, "Claire Durand (#1)")
}

func TestCoachShowIncludesReviews(t *testing.T) {
	server := newFakeAPI(t, nil)

	stdout, _, err := executeCLI(t, t.TempDir(), server.URL, "coaches", "show", "1", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"coach"`)
	assert.Contains(t, stdout, "Excellente coach")
}

func TestShowRejectsInvalidID(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "plans", "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid plans id "abc"`)
}

func TestShowNotFoundUsesFallbackMessage(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "resources", "show", "99", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erreur lors de la récupération de la ressource")
}

func TestLoginPersistsSessionForLaterCommands(t *testing.T) {
	server := newFakeAPI(t, nil)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, server.URL, "auth", "login", "--email", "lea@example.com", "--password", "secret", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status": "authenticated"`)
	assert.NotContains(t, stdout, fakeToken)

	storage, err := os.ReadFile(filepath.Join(home, ".coach", "local_storage.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(storage), "userToken")
	assert.Contains(t, string(storage), "userData")

	stdout, _, err = executeCLI(t, home, server.URL, "profile", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lea@example.com")

	stdout, _, err = executeCLI(t, home, server.URL, "auth", "check")
	require.NoError(t, err)
	assert.Equal(t, "lea@example.com\n", stdout)
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	server := newFakeAPI(t, nil)

	stdout, _, err := executeCLIWithInput(t, t.TempDir(), server.URL, strings.NewReader("secret\n"),
		"auth", "login", "--email", "lea@example.com", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status": "authenticated"`)
}

func TestLoginFailureShowsServerMessage(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "auth", "login", "--email", "lea@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Identifiants incorrects")
}

func TestAuthCheckFailsWhenSignedOut(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "auth", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestLogoutPurgesStoredSession(t *testing.T) {
	server := newFakeAPI(t, nil)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, server.URL, "auth", "login", "--email", "lea@example.com", "--password", "secret")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "auth", "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Déconnecté.")

	stdout, _, err = executeCLI(t, home, server.URL, "auth", "status", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status": "anonymous"`)
}

func TestReviewsAddValidatesBeforeCallingAPI(t *testing.T) {
	called := false
	server := newFakeAPI(t, map[string]http.HandlerFunc{
		"POST /api/coaches/1/reviews": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusCreated)
		},
	})

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "reviews", "add", "--coach", "1", "--rating", "9", "--description", "Super")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating")
	assert.False(t, called)
}

func TestReviewsAddWhenSignedIn(t *testing.T) {
	server := newFakeAPI(t, nil)
	home := t.TempDir()
	login(t, home, server.URL)

	stdout, _, err := executeCLI(t, home, server.URL, "reviews", "add", "--coach", "1", "--rating", "4", "--description", "Très bien", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"id": 11`)
}

func TestSessionsCreateRejectsUnparsableStart(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "sessions", "create", "--topic", "Bilan mensuel", "--start", "demain", "--guest", "12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid start time "demain"`)
}

func TestSessionsCreateSendsMeeting(t *testing.T) {
	server := newFakeAPI(t, nil)
	home := t.TempDir()
	login(t, home, server.URL)

	stdout, _, err := executeCLI(t, home, server.URL,
		"sessions", "create",
		"--topic", "Point d'étape",
		"--start", "2030-01-02T10:00:00Z",
		"--duration", "30",
		"--guest", "12",
		"--json",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"id": 6`)
	assert.Contains(t, stdout, `"guest_id": "12"`)
}

func TestSessionsJoinWithoutBrowserPrintsLink(t *testing.T) {
	server := newFakeAPI(t, nil)
	home := t.TempDir()
	login(t, home, server.URL)

	stdout, _, err := executeCLI(t, home, server.URL, "sessions", "join", "5", "--no-open")
	require.NoError(t, err)
	assert.Equal(t, "https://zoom.us/j/555\n", stdout)
}

func TestSessionsJoinWithoutLinkFails(t *testing.T) {
	server := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /api/zoom/meetings/5/join": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":5,"topic":"Bilan mensuel"}`))
		},
	})
	home := t.TempDir()
	login(t, home, server.URL)

	stdout, _, err := executeCLI(t, home, server.URL, "sessions", "join", "5", "--no-open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to join session")
	assert.Empty(t, stdout)
}

func TestSessionsTokenRequiresSession(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "sessions", "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthenticated.")
}

func TestProfileUpdateUploadsPhoto(t *testing.T) {
	var gotPhoto string
	server := newFakeAPI(t, map[string]http.HandlerFunc{
		"POST /api/user/profile/update": func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+fakeToken {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if file, header, err := r.FormFile("photo"); err == nil {
				data, _ := io.ReadAll(file)
				gotPhoto = header.Filename + ":" + string(data)
			}
			_, _ = w.Write([]byte(`{"id":7,"nom":"Martin","prenom":"Léa","telephone":"` + r.FormValue("telephone") + `"}`))
		},
	})
	home := t.TempDir()
	login(t, home, server.URL)

	photo := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(photo, []byte("png-bytes"), 0o600))

	stdout, _, err := executeCLI(t, home, server.URL, "profile", "update", "--telephone", "0611223344", "--photo", photo, "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "0611223344")
	assert.Equal(t, "avatar.png:png-bytes", gotPhoto)
}

func TestProfileUpdateRejectsEmptyUpdate(t *testing.T) {
	server := newFakeAPI(t, nil)

	_, _, err := executeCLI(t, t.TempDir(), server.URL, "profile", "update")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestDashboardReportsPartialFailures(t *testing.T) {
	server := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /api/plans": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	home := t.TempDir()
	login(t, home, server.URL)

	stdout, _, err := executeCLI(t, home, server.URL, "dashboard", "--json")
	require.NoError(t, err)

	var out dashboardOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.NotNil(t, out.User)
	assert.Equal(t, "Léa", out.User.Prenom)
	assert.Len(t, out.Coaches, 2)
	assert.Empty(t, out.Plans)
	assert.Len(t, out.Resources, 1)
	assert.Len(t, out.Sessions, 1)
	assert.Equal(t, []string{"Erreur lors de la récupération des plans"}, out.Errors)
}

func TestUnknownPlatformFailsWiring(t *testing.T) {
	server := newFakeAPI(t, nil)
	t.Setenv("COACH_PLATFORM", "desktop")

	_, _, err := executeCLIRaw(t, t.TempDir(), server.URL, nil, "coaches", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown platform "desktop"`)
}

func login(t *testing.T, home, baseURL string) {
	t.Helper()

	_, _, err := executeCLI(t, home, baseURL, "auth", "login", "--email", "lea@example.com", "--password", "secret")
	require.NoError(t, err)
}

func executeCLI(t *testing.T, home, serverURL string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, serverURL, nil, args...)
}

func executeCLIWithInput(t *testing.T, home, serverURL string, in io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("COACH_PLATFORM", "web")
	return executeCLIRaw(t, home, serverURL, in, args...)
}

func executeCLIRaw(t *testing.T, home, serverURL string, in io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	if serverURL != "" {
		t.Setenv("COACH_API_BASE_URL", serverURL+"/api")
	}

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	if in != nil {
		root.SetIn(in)
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
