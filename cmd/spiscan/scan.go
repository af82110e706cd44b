// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tochemey/spi/internal/descriptor"
	"github.com/tochemey/spi/internal/discovery"
	"github.com/tochemey/spi/internal/loading"
	"github.com/tochemey/spi/log"
)

type scanOptions struct {
	dir               string
	contract          string
	vendorNamespace   string
	servicesNamespace string
	suffix            string
	verbose           bool
}

func newScanCmd() *cobra.Command {
	opts := new(scanOptions)
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "List the bundles of a plugin directory and the descriptors they carry for a contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.OutOrStdout(), opts)
		},
	}

	flags := scanCmd.Flags()
	flags.StringVar(&opts.dir, "dir", "", "plugin directory to scan")
	flags.StringVar(&opts.contract, "contract", "", "fully-qualified contract name")
	flags.StringVar(&opts.vendorNamespace, "vendor-namespace", discovery.DefaultVendorNamespace, "descriptor namespace scanned first")
	flags.StringVar(&opts.servicesNamespace, "services-namespace", discovery.DefaultServicesNamespace, "standard descriptor namespace")
	flags.StringVar(&opts.suffix, "suffix", discovery.DefaultBundleSuffix, "bundle file name suffix")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	_ = scanCmd.MarkFlagRequired("dir")
	_ = scanCmd.MarkFlagRequired("contract")
	return scanCmd
}

func runScan(out io.Writer, opts *scanOptions) error {
	if strings.TrimSpace(opts.contract) == "" {
		return errors.New("a contract name is required")
	}

	logger := log.DiscardLogger
	if opts.verbose {
		logger = log.DebugLogger
	}

	factory := loading.NewFactory(nil, loading.WithLogger(logger))
	engine := discovery.NewEngine(factory,
		discovery.WithBundleSuffix(opts.suffix),
		discovery.WithNamespaces(opts.vendorNamespace, opts.servicesNamespace),
		discovery.WithLogger(logger))

	bundles, err := engine.Bundles(opts.dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", opts.dir, err)
	}
	if len(bundles) == 0 {
		fmt.Fprintf(out, "no bundles ending with %s in %s\n", opts.suffix, opts.dir)
		return nil
	}

	for _, bundle := range bundles {
		fmt.Fprintf(out, "bundle %s\n", bundle)
		ctx, err := factory.Create(bundle, loading.Isolated)
		if err != nil {
			fmt.Fprintf(out, "  error: %v\n", err)
			continue
		}
		printDescriptors(out, ctx, engine.Namespaces(opts.contract))
		if err := ctx.Close(); err != nil {
			logger.Warnf("failed to close %s: %v", bundle, err)
		}
	}
	return nil
}

func printDescriptors(out io.Writer, ctx loading.Context, paths []string) {
	found := false
	for _, resourcePath := range paths {
		resources, err := ctx.Resources(resourcePath)
		if err != nil {
			fmt.Fprintf(out, "  %s\n    error: %v\n", resourcePath, err)
		}
		for _, resource := range resources {
			found = true
			fmt.Fprintf(out, "  %s\n", resourcePath)
			entries, err := descriptor.ParseBytes(resource.Data)
			if err != nil {
				fmt.Fprintf(out, "    error: %v\n", err)
				continue
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "    line %d: %s -> %s\n", entry.Line, strings.Join(entry.Names, ", "), entry.Identifier)
			}
		}
	}
	if !found {
		fmt.Fprintln(out, "  no descriptors")
	}
}
