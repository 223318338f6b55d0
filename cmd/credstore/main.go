package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-cred-store/internal/adapter"
	"github.com/MKhiriev/go-cred-store/internal/config"
	"github.com/MKhiriev/go-cred-store/internal/logger"
	"github.com/MKhiriev/go-cred-store/internal/service"
	"github.com/MKhiriev/go-cred-store/internal/store"
	"github.com/MKhiriev/go-cred-store/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: credstore [flags] <command> [args]

commands:
  set <name> <password>        store a password credential
  set-json <name> <json-doc>   store a json credential
  get <name>                   fetch the current version (cache fallback)
  versions <name>              fetch all stored versions
  delete <name>                delete the credential
  list                         list locally cached credentials
  permissions <name>           show actors permitted on the credential
  allow <name> <actor-type> <actor-id> <op>...
                               attach a permission (actor-type: app, user, client)
  watch [interval]             keep cached credentials refreshed until interrupted
`

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("go-cred-store")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.App)

	ctx := logger.ToContext(context.Background(), log)
	if err = services.CacheService.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("initialise local cache")
	}

	if err = dispatch(ctx, services, flag.Args()); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, services *service.ClientServices, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return fmt.Errorf("no command given")
	}

	svc := services.CredentialService
	command, params := args[0], args[1:]
	switch command {
	case "set":
		return runSet(ctx, svc, params)
	case "set-json":
		return runSetJSON(ctx, svc, params)
	case "get":
		return runGet(ctx, svc, params)
	case "versions":
		return runVersions(ctx, svc, params)
	case "delete":
		return runDelete(ctx, svc, params)
	case "list":
		return runList(ctx, svc)
	case "permissions":
		return runPermissions(ctx, svc, params)
	case "allow":
		return runAllow(ctx, svc, params)
	case "watch":
		return runWatch(ctx, services.RefreshJob, params)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSet(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 2 {
		return fmt.Errorf("set expects <name> <password>")
	}

	cred, err := svc.SetPassword(ctx, credentialName(params[0]), params[1], true, nil)
	if err != nil {
		return err
	}

	return printJSON(cred)
}

func runSetJSON(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 2 {
		return fmt.Errorf("set-json expects <name> <json-doc>")
	}

	var value map[string]any
	if err := json.Unmarshal([]byte(params[1]), &value); err != nil {
		return fmt.Errorf("parse json document: %w", err)
	}

	cred, err := svc.SetJSON(ctx, credentialName(params[0]), value, true, nil)
	if err != nil {
		return err
	}

	return printJSON(cred)
}

func runGet(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 1 {
		return fmt.Errorf("get expects <name>")
	}

	cred, err := svc.Get(ctx, fullName(params[0]))
	if err != nil {
		return err
	}

	return printJSON(cred)
}

func runVersions(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 1 {
		return fmt.Errorf("versions expects <name>")
	}

	versions, err := svc.GetVersions(ctx, fullName(params[0]))
	if err != nil {
		return err
	}

	return printJSON(versions)
}

func runDelete(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 1 {
		return fmt.Errorf("delete expects <name>")
	}

	if err := svc.Delete(ctx, fullName(params[0])); err != nil {
		return err
	}

	fmt.Println("deleted", fullName(params[0]))
	return nil
}

func runList(ctx context.Context, svc service.ClientCredentialService) error {
	creds, err := svc.ListCached(ctx)
	if err != nil {
		return err
	}

	return printJSON(creds)
}

func runPermissions(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) != 1 {
		return fmt.Errorf("permissions expects <name>")
	}

	perms, err := svc.Permissions(ctx, fullName(params[0]))
	if err != nil {
		return err
	}

	return printJSON(perms)
}

func runAllow(ctx context.Context, svc service.ClientCredentialService, params []string) error {
	if len(params) < 4 {
		return fmt.Errorf("allow expects <name> <actor-type> <actor-id> <op>...")
	}

	name, actorType, actorID := params[0], params[1], params[2]

	ops, err := parseOperations(params[3:])
	if err != nil {
		return err
	}

	builder := models.NewPermissionBuilder()
	switch actorType {
	case "app":
		builder.WithApp(actorID)
	case "user":
		builder.WithUser(actorID)
	case "client":
		builder.WithClient(actorID)
	default:
		return fmt.Errorf("unknown actor type %q (want app, user, or client)", actorType)
	}

	perm, err := builder.WithOperations(ops...).Build()
	if err != nil {
		return err
	}

	if err = svc.AddPermissions(ctx, fullName(name), []models.Permission{perm}); err != nil {
		return err
	}

	fmt.Println("permission added for", perm.Actor().Identity())
	return nil
}

func runWatch(ctx context.Context, job service.ClientRefreshJob, params []string) error {
	if len(params) > 1 {
		return fmt.Errorf("watch expects at most [interval]")
	}

	var interval time.Duration
	if len(params) == 1 {
		parsed, err := time.ParseDuration(params[0])
		if err != nil {
			return fmt.Errorf("parse interval: %w", err)
		}
		interval = parsed
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job.Start(ctx, interval)
	defer job.Stop()

	fmt.Println("watching cached credentials, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}

func parseOperations(tokens []string) ([]models.Operation, error) {
	ops := make([]models.Operation, 0, len(tokens))
	for _, token := range tokens {
		switch op := models.Operation(token); op {
		case models.OperationRead, models.OperationWrite, models.OperationDelete,
			models.OperationReadACL, models.OperationWriteACL:
			ops = append(ops, op)
		default:
			return nil, fmt.Errorf("unknown operation %q", token)
		}
	}
	return ops, nil
}

func credentialName(raw string) models.CredentialName {
	segments := strings.Split(strings.Trim(raw, "/"), "/")
	return models.NewCredentialName(segments...)
}

func fullName(raw string) string {
	return credentialName(raw).Name()
}

func printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Println(string(payload))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
