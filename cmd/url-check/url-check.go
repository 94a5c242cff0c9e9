package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"

	"github.com/neutree-ai/url-check/cmd/url-check/app/cmd"
)

func main() {
	klog.InitFlags(nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cmd.Execute(ctx)

	stop()
	klog.Flush()
	os.Exit(code)
}
