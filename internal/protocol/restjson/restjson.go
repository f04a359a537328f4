// Package restjson implements the REST-JSON protocol: input members bound by
// HTTP traits go to the URI, query string and headers, the rest form a JSON
// document body.
package restjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws-amplify/aws-sdk-connect-go/core"
	"github.com/aws-amplify/aws-sdk-connect-go/core/traits"
	smithyjson "github.com/aws-amplify/aws-sdk-connect-go/encoding/json"
	"github.com/aws-amplify/aws-sdk-connect-go/httpbinding"
	smithyhttp "github.com/aws-amplify/aws-sdk-connect-go/transport/http"
)

// ContentType is sent with every request that carries a document body.
const ContentType = "application/x-amz-json-1.1"

// New returns an instance of the REST-JSON protocol.
func New() *Protocol {
	return &Protocol{
		codec: &smithyjson.Codec{
			UseJSONName:  true,
			HTTPBindings: true,
		},
	}
}

// Protocol implements aws.protocols#restJson1.
type Protocol struct {
	codec *smithyjson.Codec
}

var _ core.ClientProtocol[*smithyhttp.Request, *smithyhttp.Response] = (*Protocol)(nil)

// ID identifies the protocol.
func (*Protocol) ID() string {
	return "aws.protocols#restJson1"
}

// SerializeRequest binds the input of op onto req. The method and URI
// template come from the operation's http trait.
func (p *Protocol) SerializeRequest(
	ctx context.Context,
	op *core.Schema,
	in core.Serializable,
	req *smithyhttp.Request,
) error {
	if in == nil {
		return fmt.Errorf("nil input for %s", op.ID().Name)
	}

	httpTrait, ok := core.SchemaTrait[*traits.HTTP](op)
	if !ok {
		return fmt.Errorf("operation %s has no http trait", op.ID().Name)
	}
	input := op.Member("input")
	if input == nil {
		return fmt.Errorf("operation %s has no input", op.ID().Name)
	}

	opPath, opQuery := splitURI(httpTrait.URI)
	req.Method = httpTrait.Method
	req.URL.Path = joinPath(req.URL.Path, opPath)
	if len(opQuery) != 0 {
		if len(req.URL.RawQuery) != 0 {
			req.URL.RawQuery += "&"
		}
		req.URL.RawQuery += opQuery
	}

	enc, err := httpbinding.NewEncoder(req.URL.Path, req.URL.RawQuery, req.Header)
	if err != nil {
		return err
	}

	hs := httpbinding.NewShapeSerializer(enc)
	in.Serialize(hs)
	if err := hs.Finish(input); err != nil {
		return err
	}
	if req.Request, err = enc.Encode(req.Request); err != nil {
		return err
	}

	if len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", ContentType)
	}
	if !hasDocumentMembers(input) {
		return nil
	}

	ss := p.codec.Serializer()
	ss.WriteStruct(input, in)

	sreq, err := req.SetStream(bytes.NewReader(ss.Bytes()))
	if err != nil {
		return fmt.Errorf("set stream: %w", err)
	}

	*req = *sreq
	return nil
}

// DeserializeResponse reads a 2xx response body into out. Any other status
// is decoded into the modeled error found in types, or a GenericAPIError.
func (p *Protocol) DeserializeResponse(
	ctx context.Context,
	types *core.TypeRegistry,
	resp *smithyhttp.Response,
	out core.Deserializable,
) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return p.deserializeError(types, resp)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &core.DeserializationError{Err: err}
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	sd := p.codec.Deserializer(payload)
	if err := core.Unmarshal(sd, out); err != nil {
		return &core.DeserializationError{Err: err, Snapshot: snapshot(payload)}
	}

	return nil
}

func (p *Protocol) deserializeError(types *core.TypeRegistry, resp *smithyhttp.Response) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &core.DeserializationError{Err: fmt.Errorf("failed to read error response body, %w", err)}
	}

	bodyInfo, err := getProtocolErrorInfo(payload)
	if err != nil {
		return &core.DeserializationError{
			Err:      fmt.Errorf("failed to decode response body, %w", err),
			Snapshot: snapshot(payload),
		}
	}

	errorCode := "UnknownError"
	errorMessage := errorCode
	if typ, ok := resolveProtocolErrorType(resp.Header.Get("X-Amzn-ErrorType"), bodyInfo); ok {
		errorCode = typ
	}
	if msg := bodyInfo.message(); len(msg) != 0 {
		errorMessage = msg
	}

	perr, ok := types.DeserializableError(errorCode)
	if !ok {
		return &core.GenericAPIError{
			Code:    errorCode,
			Message: errorMessage,
			Fault:   faultFromStatus(resp.StatusCode),
		}
	}

	if len(bytes.TrimSpace(payload)) != 0 {
		if err := core.Unmarshal(p.codec.Deserializer(payload), perr); err != nil {
			return &core.DeserializationError{Err: err, Snapshot: snapshot(payload)}
		}
	}

	return perr
}

type protocolErrorInfo struct {
	Type         string `json:"__type"`
	Code         any    `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

func (i protocolErrorInfo) message() string {
	if len(i.Message) != 0 {
		return i.Message
	}
	return i.MessageUpper
}

func getProtocolErrorInfo(payload []byte) (protocolErrorInfo, error) {
	var errInfo protocolErrorInfo
	if len(bytes.TrimSpace(payload)) == 0 {
		return errInfo, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&errInfo); err != nil && err != io.EOF {
		return errInfo, err
	}
	return errInfo, nil
}

func resolveProtocolErrorType(headerType string, bodyInfo protocolErrorInfo) (string, bool) {
	if len(headerType) != 0 {
		return sanitizeErrorCode(headerType), true
	} else if len(bodyInfo.Type) != 0 {
		return sanitizeErrorCode(bodyInfo.Type), true
	} else if code, ok := bodyInfo.Code.(string); ok && len(code) != 0 {
		return sanitizeErrorCode(code), true
	}
	return "", false
}

// sanitizeErrorCode drops the URI suffix after ':' and the namespace prefix
// before '#'.
func sanitizeErrorCode(code string) string {
	if i := strings.IndexByte(code, ':'); i != -1 {
		code = code[:i]
	}
	if i := strings.IndexByte(code, '#'); i != -1 {
		code = code[i+1:]
	}
	return code
}

func faultFromStatus(status int) core.ErrorFault {
	switch {
	case status >= 500:
		return core.FaultServer
	case status >= 400:
		return core.FaultClient
	}
	return core.FaultUnknown
}

// hasDocumentMembers reports whether any input member is left for the body.
func hasDocumentMembers(input *core.Schema) bool {
	for _, m := range input.Members() {
		if core.HasTrait[*traits.HTTPLabel](m) ||
			core.HasTrait[*traits.HTTPQuery](m) ||
			core.HasTrait[*traits.HTTPHeader](m) {
			continue
		}
		return true
	}
	return false
}

func splitURI(uri string) (path, query string) {
	if i := strings.IndexByte(uri, '?'); i != -1 {
		return uri[:i], uri[i+1:]
	}
	return uri, ""
}

func joinPath(base, path string) string {
	if len(base) == 0 {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func snapshot(p []byte) []byte {
	const max = 1024
	if len(p) > max {
		p = p[:max]
	}
	return append([]byte(nil), p...)
}
