package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	connect "github.com/aws-amplify/aws-sdk-connect-go"
	"github.com/aws-amplify/aws-sdk-connect-go/core"
	smithyjson "github.com/aws-amplify/aws-sdk-connect-go/encoding/json"
	"github.com/aws-amplify/aws-sdk-connect-go/types"
)

// cli holds the state shared by the subcommands of one invocation.
type cli struct {
	configPath string
	region     string
	profile    string
	endpoint   string
	instanceID string
	debug      bool

	config *Configuration
	logger *logrus.Logger
	client *connect.Client
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "connectctl",
		Short:         "Inspect and manage Amazon Connect instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "path of the YAML configuration file")
	flags.StringVar(&c.region, "region", "", "region requests are sent to")
	flags.StringVar(&c.profile, "profile", "", "shared config profile to load credentials from")
	flags.StringVar(&c.endpoint, "endpoint", "", "URL replacing the regional service endpoint")
	flags.StringVar(&c.instanceID, "instance-id", "", "identifier of the Amazon Connect instance")
	flags.BoolVar(&c.debug, "debug", false, "log requests and responses")

	root.AddCommand(
		c.listInstancesCommand(),
		c.describeInstanceCommand(),
		c.listQueuesCommand(),
		c.describeQueueCommand(),
		c.createQueueCommand(),
		c.listUsersCommand(),
		c.listTagsCommand(),
		c.tagResourceCommand(),
		c.untagResourceCommand(),
	)
	return root
}

// setup resolves the configuration and builds the client. Flags override the
// configuration file.
func (c *cli) setup(ctx context.Context, stderr io.Writer) error {
	cfg, err := resolveConfiguration(c.configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if len(c.region) != 0 {
		cfg.Region = c.region
	}
	if len(c.profile) != 0 {
		cfg.Profile = c.profile
	}
	if len(c.endpoint) != 0 {
		cfg.Endpoint = c.endpoint
	}
	if len(c.instanceID) != 0 {
		cfg.InstanceID = c.instanceID
	}
	if c.debug {
		cfg.Log.Level = "debug"
		cfg.Log.Requests = true
	}
	c.config = cfg

	c.logger, err = newLogger(stderr, cfg)
	if err != nil {
		return fmt.Errorf("unable to configure logging: %w", err)
	}
	entry := logrus.NewEntry(c.logger)

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = cfg.HTTP.RetryMax
	httpClient.RetryWaitMin = cfg.HTTP.RetryWaitMin
	httpClient.RetryWaitMax = cfg.HTTP.RetryWaitMax
	httpClient.HTTPClient.Timeout = cfg.HTTP.Timeout
	httpClient.Logger = retryLogger{entry: entry.WithField("component", "http")}
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	var loadOpts []func(*config.LoadOptions) error
	if len(cfg.Region) != 0 {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if len(cfg.Profile) != 0 {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return fmt.Errorf("load aws configuration: %w", err)
	}

	c.client = connect.NewFromConfig(awsCfg, func(o *connect.Options) {
		o.AppID = "connectctl"
		o.HTTPClient = httpClient.StandardClient()
		o.Logger = clientLogger{entry: entry.WithField("component", "client")}
		if len(cfg.Endpoint) != 0 {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.Log.Requests {
			o.ClientLogMode = connect.LogRequest | connect.LogResponse
		}
	})
	return nil
}

func (c *cli) requireInstanceID() (*string, error) {
	if len(c.config.InstanceID) == 0 {
		return nil, fmt.Errorf("--instance-id is required")
	}
	return aws.String(c.config.InstanceID), nil
}

// printOutput writes v in the service's JSON form, indented.
func printOutput(w io.Writer, v core.Serializable) error {
	codec := &smithyjson.Codec{UseJSONName: true}
	ss := codec.Serializer()
	ss.WriteStruct(nil, v)

	var buf bytes.Buffer
	if err := json.Indent(&buf, ss.Bytes(), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func (c *cli) listInstancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-instances",
		Short: "List the instances of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := &connect.ListInstancesOutput{}
			p := connect.NewListInstancesPaginator(c.client, &connect.ListInstancesInput{})
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return err
				}
				all.InstanceSummaryList = append(all.InstanceSummaryList, page.InstanceSummaryList...)
			}
			return printOutput(cmd.OutOrStdout(), all)
		},
	}
}

func (c *cli) describeInstanceCommand() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "describe-instance",
		Short: "Describe an instance, optionally waiting until it is active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.requireInstanceID()
			if err != nil {
				return err
			}
			in := &connect.DescribeInstanceInput{InstanceId: id}

			var out *connect.DescribeInstanceOutput
			if wait > 0 {
				c.logger.WithField("instance", *id).Infof("waiting up to %v for instance to become active", wait)
				out, err = connect.NewInstanceActiveWaiter(c.client).WaitForOutput(cmd.Context(), in, wait)
			} else {
				out, err = c.client.DescribeInstance(cmd.Context(), in)
			}
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().DurationVar(&wait, "wait", 0, "wait up to this long for the instance to become active")
	return cmd
}

func (c *cli) listQueuesCommand() *cobra.Command {
	var queueTypes []string

	cmd := &cobra.Command{
		Use:   "list-queues",
		Short: "List the queues of an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.requireInstanceID()
			if err != nil {
				return err
			}

			in := &connect.ListQueuesInput{InstanceId: id}
			for _, t := range queueTypes {
				in.QueueTypes = append(in.QueueTypes, types.QueueType(strings.ToUpper(t)))
			}

			all := &connect.ListQueuesOutput{}
			p := connect.NewListQueuesPaginator(c.client, in)
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return err
				}
				all.QueueSummaryList = append(all.QueueSummaryList, page.QueueSummaryList...)
			}
			return printOutput(cmd.OutOrStdout(), all)
		},
	}
	cmd.Flags().StringSliceVar(&queueTypes, "queue-type", nil, "queue types to list, STANDARD or AGENT")
	return cmd
}

func (c *cli) describeQueueCommand() *cobra.Command {
	var queueID string

	cmd := &cobra.Command{
		Use:   "describe-queue",
		Short: "Describe a queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.requireInstanceID()
			if err != nil {
				return err
			}
			out, err := c.client.DescribeQueue(cmd.Context(), &connect.DescribeQueueInput{
				InstanceId: id,
				QueueId:    aws.String(queueID),
			})
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&queueID, "queue-id", "", "identifier of the queue")
	cmd.MarkFlagRequired("queue-id")
	return cmd
}

func (c *cli) createQueueCommand() *cobra.Command {
	var (
		name, description, hoursOfOperationID string
		maxContacts                           int32
		tags                                  map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create-queue",
		Short: "Create a queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.requireInstanceID()
			if err != nil {
				return err
			}
			in := &connect.CreateQueueInput{
				InstanceId:         id,
				Name:               aws.String(name),
				HoursOfOperationId: aws.String(hoursOfOperationID),
				Tags:               tags,
			}
			if len(description) != 0 {
				in.Description = aws.String(description)
			}
			if cmd.Flags().Changed("max-contacts") {
				in.MaxContacts = aws.Int32(maxContacts)
			}

			out, err := c.client.CreateQueue(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name of the queue")
	cmd.Flags().StringVar(&description, "description", "", "description of the queue")
	cmd.Flags().StringVar(&hoursOfOperationID, "hours-of-operation-id", "", "identifier of the hours of operation")
	cmd.Flags().Int32Var(&maxContacts, "max-contacts", 0, "contacts in the queue before it is considered full")
	cmd.Flags().StringToStringVar(&tags, "tag", nil, "tags as key=value pairs")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("hours-of-operation-id")
	return cmd
}

func (c *cli) listUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List the users of an instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := c.requireInstanceID()
			if err != nil {
				return err
			}

			all := &connect.ListUsersOutput{}
			p := connect.NewListUsersPaginator(c.client, &connect.ListUsersInput{InstanceId: id})
			for p.HasMorePages() {
				page, err := p.NextPage(cmd.Context())
				if err != nil {
					return err
				}
				all.UserSummaryList = append(all.UserSummaryList, page.UserSummaryList...)
			}
			return printOutput(cmd.OutOrStdout(), all)
		},
	}
}

func (c *cli) listTagsCommand() *cobra.Command {
	var resourceARN string

	cmd := &cobra.Command{
		Use:   "list-tags",
		Short: "List the tags of a resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.client.ListTagsForResource(cmd.Context(), &connect.ListTagsForResourceInput{
				ResourceArn: aws.String(resourceARN),
			})
			if err != nil {
				return err
			}
			return printOutput(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&resourceARN, "resource-arn", "", "ARN of the resource")
	cmd.MarkFlagRequired("resource-arn")
	return cmd
}

func (c *cli) tagResourceCommand() *cobra.Command {
	var (
		resourceARN string
		tags        map[string]string
	)

	cmd := &cobra.Command{
		Use:   "tag-resource",
		Short: "Add tags to a resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.client.TagResource(cmd.Context(), &connect.TagResourceInput{
				ResourceArn: aws.String(resourceARN),
				Tags:        tags,
			})
			if err != nil {
				return err
			}
			c.logger.WithField("resource", resourceARN).Infof("added %d tags", len(tags))
			return nil
		},
	}
	cmd.Flags().StringVar(&resourceARN, "resource-arn", "", "ARN of the resource")
	cmd.Flags().StringToStringVar(&tags, "tag", nil, "tags as key=value pairs")
	cmd.MarkFlagRequired("resource-arn")
	cmd.MarkFlagRequired("tag")
	return cmd
}

func (c *cli) untagResourceCommand() *cobra.Command {
	var (
		resourceARN string
		keys        []string
	)

	cmd := &cobra.Command{
		Use:   "untag-resource",
		Short: "Remove tags from a resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.client.UntagResource(cmd.Context(), &connect.UntagResourceInput{
				ResourceArn: aws.String(resourceARN),
				TagKeys:     keys,
			})
			if err != nil {
				return err
			}
			c.logger.WithField("resource", resourceARN).Infof("removed %d tags", len(keys))
			return nil
		},
	}
	cmd.Flags().StringVar(&resourceARN, "resource-arn", "", "ARN of the resource")
	cmd.Flags().StringSliceVar(&keys, "tag-key", nil, "keys of the tags to remove")
	cmd.MarkFlagRequired("resource-arn")
	cmd.MarkFlagRequired("tag-key")
	return cmd
}
