package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"workforce-engine/internal/handler"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /run over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := cfg.Server.Port
		if servePort != "" {
			port = servePort
		}

		h := handler.New(newEngine(), logger)
		server := &fasthttp.Server{
			Handler: h.Handle,
			Name:    "workforce-engine",
		}

		logger.Info("Workforce engine starting", zap.String("port", port))
		if err := server.ListenAndServe(":" + port); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides config and PORT)")
}
