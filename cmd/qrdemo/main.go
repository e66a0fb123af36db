/*
 * Copyright © 2026, the qrcode-micro authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command qrdemo is a small CLI for exercising the qrcode-micro library
// directly: printing a symbol to the terminal, writing it out as SVG and
// opening it in a browser, or comparing our own rendering against
// qrterminal's independent encoder for the same text.
package main

import (
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	qrcodegen "github.com/grkuntzmd/qrcode-micro"
)

var (
	errorLevel string
	micro      bool
	outPath    string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qrdemo",
		Short: "Encode and preview QR / Micro QR symbols",
	}
	root.PersistentFlags().StringVar(&errorLevel, "level", "L", "error correction level: L, M, Q, or H")
	root.PersistentFlags().BoolVar(&micro, "micro", false, "require a Micro QR symbol")

	root.AddCommand(termCmd(), svgCmd(), compareCmd())
	return root
}

func parseLevel(s string) (qrcodegen.ErrorLevel, error) {
	switch s {
	case "L", "l":
		return qrcodegen.Low, nil
	case "M", "m":
		return qrcodegen.Medium, nil
	case "Q", "q":
		return qrcodegen.Quartile, nil
	case "H", "h":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unrecognized error level %q", s)
	}
}

func encode(text string) (*qrcodegen.QRCode, error) {
	level, err := parseLevel(errorLevel)
	if err != nil {
		return nil, err
	}
	return qrcodegen.EncodeText(text, qrcodegen.WithErrorLevel(level), qrcodegen.WithMicro(micro))
}

func termCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term [text]",
		Short: "Print the symbol to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := encode(args[0])
			if err != nil {
				return err
			}
			fmt.Print(q.String())
			return nil
		},
	}
}

func svgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg [text]",
		Short: "Write the symbol as SVG and open it in a browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := encode(args[0])
			if err != nil {
				return err
			}
			svg, err := q.ToSVGString(4, true)
			if err != nil {
				return err
			}
			path := outPath
			if path == "" {
				f, err := os.CreateTemp("", "qrdemo-*.svg")
				if err != nil {
					return err
				}
				path = f.Name()
				if _, err := f.WriteString(svg); err != nil {
					f.Close()
					return err
				}
				f.Close()
			} else if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
				return err
			}
			return browser.OpenFile(path)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write (default: a temp file)")
	return cmd
}

// compareCmd renders the same text through this package's own encoder and
// through qrterminal's independent one, side by side — a quick visual
// sanity check that our module layout isn't obviously wrong.
func compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [text]",
		Short: "Print our own rendering next to qrterminal's",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := encode(args[0])
			if err != nil {
				return err
			}
			fmt.Println("qrcode-micro:")
			fmt.Print(q.String())
			fmt.Println("qrterminal:")
			qrterminal.GenerateHalfBlock(args[0], qrterminal.L, os.Stdout)
			return nil
		},
	}
}
