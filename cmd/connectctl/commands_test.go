package main

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/go-cmp/cmp"

	"github.com/aws-amplify/aws-sdk-connect-go/connecttest"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

func isolateAWSEnv(t *testing.T) {
	t.Helper()

	t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_CA_BUNDLE", "")
}

func runCommand(t *testing.T, endpoint string, args ...string) (string, error) {
	t.Helper()
	isolateAWSEnv(t)
	return execute(t, endpoint, args...)
}

func execute(t *testing.T, endpoint string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--region", "us-west-2", "--endpoint", endpoint}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCommands(t *testing.T) {
	srv := connecttest.NewServer()
	hs := httptest.NewServer(srv)
	defer hs.Close()

	inst := srv.AddInstance(types.Instance{InstanceAlias: aws.String("support")}, 0)

	out, err := runCommand(t, hs.URL, "describe-instance", "--instance-id", *inst.Id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var described struct {
		Instance struct {
			Id             string
			InstanceAlias  string
			InstanceStatus string
		}
	}
	if err := json.Unmarshal([]byte(out), &described); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	if diff := cmp.Diff("ACTIVE", described.Instance.InstanceStatus); len(diff) != 0 {
		t.Errorf("status mismatch (-want +got):\n%s", diff)
	}
	if e, a := "support", described.Instance.InstanceAlias; e != a {
		t.Errorf("expected alias %v, got %v", e, a)
	}

	for _, name := range []string{"billing", "sales"} {
		if _, err := runCommand(t, hs.URL, "create-queue",
			"--instance-id", *inst.Id,
			"--name", name,
			"--hours-of-operation-id", "hop-1",
			"--tag", "team="+name,
		); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	out, err = runCommand(t, hs.URL, "list-queues", "--instance-id", *inst.Id, "--queue-type", "standard")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var listed struct {
		QueueSummaryList []struct{ Name string }
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	var names []string
	for _, q := range listed.QueueSummaryList {
		names = append(names, q.Name)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 queues, got %v", names)
	}

	if _, err := runCommand(t, hs.URL, "tag-resource", "--resource-arn", *inst.Arn, "--tag", "env=prod"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out, err = runCommand(t, hs.URL, "list-tags", "--resource-arn", *inst.Arn)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, `"env": "prod"`) {
		t.Errorf("expected tag in output, got %q", out)
	}
}

func TestCommandErrors(t *testing.T) {
	srv := connecttest.NewServer()
	hs := httptest.NewServer(srv)
	defer hs.Close()

	cases := map[string]struct {
		Args      []string
		ExpectErr string
	}{
		"missing instance": {
			Args:      []string{"list-users"},
			ExpectErr: "--instance-id is required",
		},
		"unknown instance": {
			Args:      []string{"describe-instance", "--instance-id", "missing"},
			ExpectErr: "ResourceNotFoundException",
		},
		"missing flag": {
			Args:      []string{"describe-queue", "--instance-id", "i"},
			ExpectErr: `required flag(s) "queue-id" not set`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := runCommand(t, hs.URL, c.Args...)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
				t.Errorf("expected error to contain %q, got %q", e, a)
			}
		})
	}
}

func TestCommandsWithCABundle(t *testing.T) {
	srv := connecttest.NewServer()
	hs := httptest.NewServer(srv)
	defer hs.Close()

	inst := srv.AddInstance(types.Instance{InstanceAlias: aws.String("support")}, 0)

	tlsSrv := httptest.NewTLSServer(http.NotFoundHandler())
	defer tlsSrv.Close()
	bundle := filepath.Join(t.TempDir(), "ca.pem")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: tlsSrv.Certificate().Raw})
	if err := os.WriteFile(bundle, pemBytes, 0o600); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	isolateAWSEnv(t)
	t.Setenv("AWS_CA_BUNDLE", bundle)

	out, err := execute(t, hs.URL, "describe-instance", "--instance-id", *inst.Id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, `"InstanceAlias": "support"`) {
		t.Errorf("expected instance in output, got %q", out)
	}
}
