// Package connecttest implements an in-memory Amazon Connect service for
// tests. It speaks the same REST-JSON wire format as the service, so a
// connect.Client pointed at it through BaseEndpoint exercises the full
// request and response path.
//
//	srv := connecttest.NewServer()
//	hs := httptest.NewServer(srv)
//	defer hs.Close()
//
//	client := connect.New(connect.Options{
//		Region:       "us-west-2",
//		BaseEndpoint: aws.String(hs.URL),
//	})
//
// Instances are seeded with AddInstance. Queues, users, vocabularies and tags
// are created through the API. Every queue reports the STANDARD queue type.
package connecttest

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithyjson "github.com/aws-amplify/aws-sdk-connect-go/encoding/json"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// Request is a request received by the Server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is an in-memory Amazon Connect service. It is safe for concurrent
// use.
type Server struct {
	// Region and AccountID are used to build resource ARNs.
	Region    string
	AccountID string

	// VocabularyPolls is the number of DescribeVocabulary calls a new
	// vocabulary reports CREATION_IN_PROGRESS before turning ACTIVE.
	VocabularyPolls int

	mu           sync.Mutex
	router       chi.Router
	codec        *smithyjson.Codec
	now          func() time.Time
	newID        func() string
	requests     []Request
	faults       []string
	instances    map[string]*instanceState
	queues       map[string]map[string]*types.Queue
	users        map[string]map[string]*types.User
	vocabularies map[string]map[string]*vocabularyState
	tags         map[string]map[string]string
}

type instanceState struct {
	instance         types.Instance
	pollsUntilActive int
}

type vocabularyState struct {
	vocabulary       types.Vocabulary
	clientToken      string
	pollsUntilActive int
}

// NewServer returns an empty Server for us-west-2.
func NewServer() *Server {
	s := &Server{
		Region:       "us-west-2",
		AccountID:    "123456789012",
		codec:        &smithyjson.Codec{UseJSONName: true},
		now:          func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		newID:        uuid.NewString,
		instances:    map[string]*instanceState{},
		queues:       map[string]map[string]*types.Queue{},
		users:        map[string]map[string]*types.User{},
		vocabularies: map[string]map[string]*vocabularyState{},
		tags:         map[string]map[string]string{},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(s.record)
	r.Use(s.injectFaults)

	r.Get("/instance", s.listInstances)
	r.Get("/instance/{InstanceId}", s.describeInstance)

	r.Put("/queues/{InstanceId}", s.createQueue)
	r.Get("/queues-summary/{InstanceId}", s.listQueues)
	r.Get("/queues/{InstanceId}/{QueueId}", s.describeQueue)
	r.Delete("/queues/{InstanceId}/{QueueId}", s.deleteQueue)
	r.Post("/queues/{InstanceId}/{QueueId}/name", s.updateQueueName)

	r.Put("/users/{InstanceId}", s.createUser)
	r.Get("/users-summary/{InstanceId}", s.listUsers)
	r.Get("/users/{InstanceId}/{UserId}", s.describeUser)
	r.Delete("/users/{InstanceId}/{UserId}", s.deleteUser)

	r.Post("/vocabulary/{InstanceId}", s.createVocabulary)
	r.Get("/vocabulary/{InstanceId}/{VocabularyId}", s.describeVocabulary)
	r.Post("/vocabulary-remove/{InstanceId}/{VocabularyId}", s.deleteVocabulary)
	r.Post("/vocabulary-summary/{InstanceId}", s.searchVocabularies)

	r.Get("/tags/{resourceArn}", s.listTagsForResource)
	r.Post("/tags/{resourceArn}", s.tagResource)
	r.Delete("/tags/{resourceArn}", s.untagResource)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeGenericError(w, http.StatusNotFound, "UnknownOperationException",
			fmt.Sprintf("no operation for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeGenericError(w, http.StatusMethodNotAllowed, "UnknownOperationException",
			fmt.Sprintf("no operation for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// FailNext makes the next request fail with the modeled error named code,
// for example "ThrottlingException".
func (s *Server) FailNext(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = append(s.faults, code)
}

// AddInstance seeds an instance. Its status reads CREATION_IN_PROGRESS for
// the first pollsUntilActive DescribeInstance calls and ACTIVE afterwards.
// The ID, ARN and creation time are filled when unset.
func (s *Server) AddInstance(inst types.Instance, pollsUntilActive int) types.Instance {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst.Id == nil {
		inst.Id = ptr(s.newID())
	}
	if inst.Arn == nil {
		inst.Arn = ptr(s.arn("instance/" + *inst.Id))
	}
	if inst.CreatedTime == nil {
		inst.CreatedTime = ptr(s.now())
	}
	if len(inst.InstanceStatus) == 0 {
		inst.InstanceStatus = types.InstanceStatusActive
		if pollsUntilActive > 0 {
			inst.InstanceStatus = types.InstanceStatusCreationInProgress
		}
	}
	if len(inst.IdentityManagementType) == 0 {
		inst.IdentityManagementType = types.DirectoryTypeConnectManaged
	}

	s.instances[*inst.Id] = &instanceState{instance: inst, pollsUntilActive: pollsUntilActive}
	s.tags[*inst.Arn] = copyTags(inst.Tags)
	return inst
}

func (s *Server) arn(resource string) string {
	return fmt.Sprintf("arn:aws:connect:%s:%s:%s", s.Region, s.AccountID, resource)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.writeGenericError(w, http.StatusBadRequest, "SerializationException", err.Error())
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()

		w.Header().Set(smithyhttp.RequestIDHeader, s.newID())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var code string
		if len(s.faults) != 0 {
			code, s.faults = s.faults[0], s.faults[1:]
		}
		s.mu.Unlock()

		if len(code) != 0 {
			s.writeError(w, code, "injected fault")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// decodeBody reads the JSON body of r into v. Members bound to the URI and
// query string are set by the handlers.
func (s *Server) decodeBody(r *http.Request, v core.Deserializable) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return core.Unmarshal(s.codec.Deserializer(body), v)
}

// listParams holds the query members shared by list operations.
type listParams struct {
	NextToken  string `schema:"nextToken"`
	MaxResults int32  `schema:"maxResults"`
	QueueTypes string `schema:"queueTypes"`
	TagKeys    string `schema:"tagKeys"`
}

func decodeQuery(r *http.Request) (listParams, error) {
	var p listParams
	err := queryDecoder.Decode(&p, r.URL.Query())
	return p, err
}

func splitList(v string) []string {
	if len(v) == 0 {
		return nil
	}
	return strings.Split(v, ",")
}

// pathParam returns the unescaped URI label name.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (s *Server) writeOutput(w http.ResponseWriter, v core.Serializable) {
	ss := s.codec.Serializer()
	ss.WriteStruct(nil, v)

	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(http.StatusOK)
	w.Write(ss.Bytes())
}

// writeError writes the modeled error code with the status of its httpError
// trait.
func (s *Server) writeError(w http.ResponseWriter, code, message string) {
	entry, ok := types.Errors.Entries[code]
	if !ok {
		s.writeGenericError(w, http.StatusBadRequest, code, message)
		return
	}

	status := http.StatusBadRequest
	if t, ok := core.SchemaTrait[*traits.HTTPError](entry.Schema); ok {
		status = t.Code
	}

	ss := s.codec.Serializer()
	ss.WriteStruct(entry.Schema, &errorBody{schema: entry.Schema, message: message})

	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.Header().Set("X-Amzn-ErrorType", code)
	w.WriteHeader(status)
	w.Write(ss.Bytes())
}

func (s *Server) writeGenericError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"__type":%q,"message":%q}`, code, message)
}

type errorBody struct {
	schema  *core.Schema
	message string
}

func (e *errorBody) Serialize(s core.ShapeSerializer) {
	s.WriteString(e.schema.Member("Message"), e.message)
}

// page returns the window of items selected by an opaque token and a page
// size, and the token of the following page.
func page[T any](items []T, token string, maxResults int32) ([]T, *string, error) {
	start := 0
	if len(token) != 0 {
		b, err := base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid next token")
		}
		start, err = strconv.Atoi(string(b))
		if err != nil || start < 0 || start > len(items) {
			return nil, nil, fmt.Errorf("invalid next token")
		}
	}

	end := len(items)
	if maxResults > 0 && start+int(maxResults) < end {
		end = start + int(maxResults)
	}

	var next *string
	if end < len(items) {
		next = ptr(base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(end))))
	}
	return items[start:end], next, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyTags(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
