package main

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/handlers/lookup/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Lookup flags forwarded to the server
	remoteRecursive    bool
	remoteVersionGroup string
	remoteLevel        int
	remoteSecret       bool
	remoteAll          bool
	remoteList         bool
)

// remoteMethods maps the local command names to server methods
var remoteMethods = map[string]string{
	"list":       v1alpha1.MethodVarieties,
	"types":      v1alpha1.MethodTypes,
	"abilities":  v1alpha1.MethodAbilities,
	"moves":      v1alpha1.MethodMoves,
	"eggs":       v1alpha1.MethodEggs,
	"genders":    v1alpha1.MethodGenders,
	"encounters": v1alpha1.MethodEncounters,
	"evolutions": v1alpha1.MethodEvolutions,
	"matchups":   v1alpha1.MethodMatchups,
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Run lookups against a pokelookup server",
}

var clientLookupCmd = &cobra.Command{
	Use:   "lookup COMMAND ARGS...",
	Short: "Run one lookup on the server",
	Long: `Run one lookup on the server. COMMAND and ARGS are those of the local
commands, e.g. 'client lookup matchups fairy steel --list'.`,
	Args: rangeArgs(2, 3),
	RunE: runClientLookup,
}

func init() {
	clientCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "gRPC server address (default: server.address from config)")
	clientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")

	flags := clientLookupCmd.Flags()
	flags.BoolVarP(&remoteRecursive, "recursive", "r", false, "recursively check evolution chain")
	flags.StringVarP(&remoteVersionGroup, "vgroup", "v", "", "version group of the moveset")
	flags.IntVarP(&remoteLevel, "level", "l", 0, levelUsage)
	flags.BoolVarP(&remoteSecret, "secret", "s", false, "hide the names of every species")
	flags.BoolVarP(&remoteAll, "all", "a", false, "show every evolution method")
	flags.BoolVar(&remoteList, "list", false, "print matchups as a list instead of a table")

	clientCmd.AddCommand(clientLookupCmd)
}

func runClientLookup(cmd *cobra.Command, args []string) error {
	method, ok := remoteMethods[args[0]]
	if !ok {
		return errors.InvalidArgumentf("unknown lookup %q", args[0])
	}

	req, err := lookupRequest(args[0], args[1:])
	if err != nil {
		return err
	}

	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewLookupServiceClient(conn).Call(ctx, method, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	printLines(cmd.OutOrStdout(), v1alpha1.Lines(resp))
	return nil
}

// lookupRequest builds the request fields for a local command name and its
// positional arguments
func lookupRequest(name string, args []string) (*structpb.Struct, error) {
	fields := map[string]any{
		v1alpha1.FieldLanguage: cfg.Language,
		v1alpha1.FieldFast:     fast,
	}

	switch name {
	case "encounters":
		if len(args) != 2 {
			return nil, errors.InvalidArgument("encounters takes VERSION and POKEMON")
		}
		fields[v1alpha1.FieldVersion] = args[0]
		fields[v1alpha1.FieldSubject] = args[1]
	case "matchups":
		fields[v1alpha1.FieldSubject] = args[0]
		if len(args) == 2 {
			fields[v1alpha1.FieldSecondary] = args[1]
		}
		fields[v1alpha1.FieldList] = remoteList
	default:
		if len(args) != 1 {
			return nil, errors.InvalidArgumentf("%s takes exactly one argument, got %s", name, strings.Join(args, " "))
		}
		fields[v1alpha1.FieldSubject] = args[0]
	}

	switch name {
	case "types", "abilities", "encounters":
		fields[v1alpha1.FieldRecursive] = remoteRecursive
	case "moves":
		fields[v1alpha1.FieldVersionGroup] = remoteVersionGroup
		fields[v1alpha1.FieldLevel] = remoteLevel
	case "evolutions":
		fields[v1alpha1.FieldSecret] = remoteSecret
		fields[v1alpha1.FieldAll] = remoteAll
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to encode request")
	}
	return req, nil
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	addr := cfg.Server.Address
	if serverAddr != "" {
		addr = serverAddr
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to connect to %s", addr)
	}

	return conn, nil
}
