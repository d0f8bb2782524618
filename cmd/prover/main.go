package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourorg/zkmembership/internal/logging"
	"github.com/yourorg/zkmembership/pkg/merkle"
	"github.com/yourorg/zkmembership/pkg/prover"
	"github.com/yourorg/zkmembership/pkg/witness"
)

func systemPath(dir string, depth int, publicLeaf bool) string {
	name := fmt.Sprintf("membership_d%d.system", depth)
	if publicLeaf {
		name = fmt.Sprintf("membership_d%d_publicleaf.system", depth)
	}
	return filepath.Join(dir, name)
}

// loadOrSetup reuses a cached proving system for this shape, running the
// trusted setup only on first use.
func loadOrSetup(cfg prover.Config, keysDir string) (*prover.ProvingSystem, error) {
	path := systemPath(keysDir, cfg.Depth, cfg.PublicLeaf)

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		ps, err := prover.ReadSystemFrom(f)
		if err != nil {
			return nil, fmt.Errorf("cached system %s: %w", path, err)
		}
		if ps.Depth != cfg.Depth || ps.PublicLeaf != cfg.PublicLeaf {
			return nil, fmt.Errorf("%w: cached system %s has a different shape", prover.ErrParameterMismatch, path)
		}
		return ps, nil
	}

	ps, err := prover.Setup(cfg)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := ps.WriteTo(f); err != nil {
		return nil, err
	}
	return ps, nil
}

func main() {
	var (
		leavesPath string
		index      int
		depth      int
		publicLeaf bool
		outDir     string
		keysDir    string
		jsonLogs   bool
	)

	rootCmd := &cobra.Command{
		Use:   "prover",
		Short: "Generate a Groth16 proof of Merkle tree membership",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			if jsonLogs {
				logging.SetJSONOutput()
			}

			if keysDir == "" {
				_ = godotenv.Load()
				keysDir = os.Getenv("ZKMEMBERSHIP_KEYS")
				if keysDir == "" {
					keysDir = outDir
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			if err := os.MkdirAll(keysDir, 0o755); err != nil {
				return err
			}

			f, err := os.Open(leavesPath)
			if err != nil {
				return err
			}
			leaves, err := witness.ReadLeaves(f)
			f.Close()
			if err != nil {
				return err
			}

			tree, err := merkle.NewTree(depth, leaves)
			if err != nil {
				return err
			}
			bundle, err := witness.Build(tree, index, publicLeaf)
			if err != nil {
				return err
			}

			ps, err := loadOrSetup(prover.Config{Depth: depth, PublicLeaf: publicLeaf}, keysDir)
			if err != nil {
				return err
			}

			proof, err := ps.Prove(bundle.Private, tree.Root())
			if err != nil {
				return fmt.Errorf("membership not established: %w", err)
			}

			proofFile, err := os.Create(filepath.Join(outDir, "membership_proof.bin"))
			if err != nil {
				return err
			}
			defer proofFile.Close()
			if _, err := proof.WriteTo(proofFile); err != nil {
				return err
			}

			pubBytes, err := json.MarshalIndent(bundle.Public, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(outDir, "membership_public.json"), pubBytes, 0o644); err != nil {
				return err
			}

			logging.Logger().Info().
				Int("depth", depth).
				Int("index", index).
				Dur("elapsed", time.Since(start)).
				Msg("proof written")
			return nil
		},
	}

	rootCmd.Flags().StringVar(&leavesPath, "leaves", "", "JSON file with the tree leaves as hex field elements")
	rootCmd.Flags().IntVar(&index, "index", 0, "Leaf index to prove membership for")
	rootCmd.Flags().IntVar(&depth, "depth", 0, "Tree depth")
	rootCmd.Flags().BoolVar(&publicLeaf, "public-leaf", false, "Reveal the leaf as a public input")
	rootCmd.Flags().StringVar(&outDir, "outdir", "./", "Output directory")
	rootCmd.Flags().StringVar(&keysDir, "keys", "", "Key cache directory (or ZKMEMBERSHIP_KEYS env var)")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs")
	_ = rootCmd.MarkFlagRequired("leaves")
	_ = rootCmd.MarkFlagRequired("depth")

	if err := rootCmd.Execute(); err != nil {
		logging.Logger().Fatal().Err(err).Msg("prover failed")
	}
}
