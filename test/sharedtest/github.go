package sharedtest

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

const FakeGithubToken = "valid_access_token" //nolint:gas

type FakePages struct {
	HTMLURL string `json:"html_url"`
	Status  string `json:"status"`
}

type FakeIssue struct {
	Number   int
	Title    string
	Body     string
	State    string
	Labels   []string
	Comments []string
}

// FakeRepo is the server side state of one repository. Zero status codes mean success.
type FakeRepo struct {
	Fork   bool
	Parent string

	RepoStatusCode   int
	PagesStatusCode  int
	IssuesStatusCode int
	CreateStatusCode int
	Pages            *FakePages

	Issues []*FakeIssue
}

func (r *FakeRepo) OpenIssues() []*FakeIssue {
	var ret []*FakeIssue
	for _, i := range r.Issues {
		if i.State == "open" {
			ret = append(ret, i)
		}
	}
	return ret
}

// FakeGithub serves the subset of the GitHub REST API the pages check talks to.
type FakeGithub struct {
	mu       sync.Mutex
	repos    map[string]*FakeRepo
	requests []string

	server *httptest.Server
}

func NewFakeGithub() *FakeGithub {
	fg := &FakeGithub{
		repos: map[string]*FakeRepo{},
	}

	r := mux.NewRouter()
	r.Use(fg.recordRequest, checkAuth)
	r.Methods("GET").Path("/repos/{owner}/{repo}").HandlerFunc(fg.withRepo(fg.getRepoHandler))
	r.Methods("GET").Path("/repos/{owner}/{repo}/pages").HandlerFunc(fg.withRepo(fg.getPagesHandler))
	r.Methods("GET").Path("/repos/{owner}/{repo}/issues").HandlerFunc(fg.withRepo(fg.listIssuesHandler))
	r.Methods("POST").Path("/repos/{owner}/{repo}/issues").HandlerFunc(fg.withRepo(fg.createIssueHandler))
	r.Methods("POST").Path("/repos/{owner}/{repo}/issues/{number:[0-9]+}/comments").
		HandlerFunc(fg.withRepo(fg.withIssue(fg.createCommentHandler)))
	r.Methods("PATCH").Path("/repos/{owner}/{repo}/issues/{number:[0-9]+}").
		HandlerFunc(fg.withRepo(fg.withIssue(fg.editIssueHandler)))

	fg.server = httptest.NewServer(r)
	return fg
}

func (fg *FakeGithub) URL() string {
	return fg.server.URL + "/"
}

func (fg *FakeGithub) Close() {
	fg.server.Close()
}

func (fg *FakeGithub) AddRepo(fullName string, repo *FakeRepo) *FakeRepo {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	fg.repos[strings.ToLower(fullName)] = repo
	return repo
}

// Requests returns "METHOD /path" of every request served so far.
func (fg *FakeGithub) Requests() []string {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	return append([]string(nil), fg.requests...)
}

// MutatingRequests returns the served requests that would change GitHub state.
func (fg *FakeGithub) MutatingRequests() []string {
	var ret []string
	for _, r := range fg.Requests() {
		if !strings.HasPrefix(r, "GET ") {
			ret = append(ret, r)
		}
	}
	return ret
}

func (fg *FakeGithub) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fg.mu.Lock()
		fg.requests = append(fg.requests, r.Method+" "+r.URL.Path)
		fg.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func checkAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+FakeGithubToken {
			sendError(w, http.StatusUnauthorized, "Bad credentials")
			return
		}

		next.ServeHTTP(w, r)
	})
}

type repoHandler func(w http.ResponseWriter, r *http.Request, repo *FakeRepo)

type issueHandler func(w http.ResponseWriter, r *http.Request, repo *FakeRepo, issue *FakeIssue)

func (fg *FakeGithub) withRepo(h repoHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := mux.Vars(r)

		fg.mu.Lock()
		defer fg.mu.Unlock()

		repo := fg.repos[strings.ToLower(v["owner"]+"/"+v["repo"])]
		if repo == nil {
			sendError(w, http.StatusNotFound, "Not Found")
			return
		}

		h(w, r, repo)
	}
}

func (fg *FakeGithub) withIssue(h issueHandler) repoHandler {
	return func(w http.ResponseWriter, r *http.Request, repo *FakeRepo) {
		number, _ := strconv.Atoi(mux.Vars(r)["number"])
		for _, i := range repo.Issues {
			if i.Number == number {
				h(w, r, repo, i)
				return
			}
		}

		sendError(w, http.StatusNotFound, "Not Found")
	}
}

func SendJSON(w http.ResponseWriter, status int, obj interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Fatalf("Can't JSON encode result: %s", err)
	}
}

func sendError(w http.ResponseWriter, status int, message string) {
	SendJSON(w, status, map[string]string{"message": message})
}

func issueJSON(i *FakeIssue) map[string]interface{} {
	labels := []map[string]string{}
	for _, l := range i.Labels {
		labels = append(labels, map[string]string{"name": l})
	}

	return map[string]interface{}{
		"number": i.Number,
		"title":  i.Title,
		"body":   i.Body,
		"state":  i.State,
		"labels": labels,
	}
}

func hasLabels(i *FakeIssue, labels []string) bool {
	for _, want := range labels {
		found := false
		for _, l := range i.Labels {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (fg *FakeGithub) getRepoHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo) {
	if repo.RepoStatusCode != 0 {
		sendError(w, repo.RepoStatusCode, "repo failure")
		return
	}

	v := mux.Vars(r)
	ret := map[string]interface{}{
		"id":        1,
		"full_name": v["owner"] + "/" + v["repo"],
		"fork":      repo.Fork,
	}
	if repo.Parent != "" {
		ret["parent"] = map[string]interface{}{"id": 2, "full_name": repo.Parent}
	}
	SendJSON(w, http.StatusOK, ret)
}

func (fg *FakeGithub) getPagesHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo) {
	switch {
	case repo.PagesStatusCode != 0:
		sendError(w, repo.PagesStatusCode, "pages failure")
	case repo.Pages == nil:
		sendError(w, http.StatusNotFound, "Not Found")
	default:
		SendJSON(w, http.StatusOK, repo.Pages)
	}
}

func (fg *FakeGithub) listIssuesHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo) {
	if repo.IssuesStatusCode != 0 {
		sendError(w, repo.IssuesStatusCode, "issues failure")
		return
	}

	q := r.URL.Query()
	state := q.Get("state")
	if state == "" {
		state = "open"
	}
	var labels []string
	if q.Get("labels") != "" {
		labels = strings.Split(q.Get("labels"), ",")
	}
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || perPage <= 0 {
		perPage = 30
	}

	ret := []map[string]interface{}{}
	for _, i := range repo.Issues {
		if len(ret) == perPage {
			break
		}
		if (state == "all" || i.State == state) && hasLabels(i, labels) {
			ret = append(ret, issueJSON(i))
		}
	}
	SendJSON(w, http.StatusOK, ret)
}

func (fg *FakeGithub) createIssueHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo) {
	if repo.CreateStatusCode != 0 {
		sendError(w, repo.CreateStatusCode, "create failure")
		return
	}

	var req struct {
		Title  string
		Body   string
		Labels []string
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid json: %s", err))
		return
	}

	i := &FakeIssue{
		Number: len(repo.Issues) + 1,
		Title:  req.Title,
		Body:   req.Body,
		State:  "open",
		Labels: req.Labels,
	}
	repo.Issues = append(repo.Issues, i)
	SendJSON(w, http.StatusCreated, issueJSON(i))
}

func (fg *FakeGithub) createCommentHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo, issue *FakeIssue) {
	var req struct {
		Body string
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid json: %s", err))
		return
	}

	issue.Comments = append(issue.Comments, req.Body)
	SendJSON(w, http.StatusCreated, map[string]interface{}{"id": len(issue.Comments), "body": req.Body})
}

func (fg *FakeGithub) editIssueHandler(w http.ResponseWriter, r *http.Request, repo *FakeRepo, issue *FakeIssue) {
	var req struct {
		State string
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("invalid json: %s", err))
		return
	}

	if req.State != "" {
		issue.State = req.State
	}
	SendJSON(w, http.StatusOK, issueJSON(issue))
}
