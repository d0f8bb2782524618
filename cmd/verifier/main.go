package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourorg/zkmembership/internal/logging"
	"github.com/yourorg/zkmembership/pkg/prover"
	"github.com/yourorg/zkmembership/pkg/witness"
)

func main() {
	var systemPath, proofPath, publicPath string

	cmd := &cobra.Command{
		Use:   "verifier",
		Short: "Verify a Groth16 proof of Merkle tree membership",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sysFile, err := os.Open(systemPath)
			if err != nil {
				return err
			}
			defer sysFile.Close()
			ps, err := prover.ReadSystemFrom(sysFile)
			if err != nil {
				return err
			}

			proofFile, err := os.Open(proofPath)
			if err != nil {
				return err
			}
			defer proofFile.Close()
			var proof prover.Proof
			if _, err := proof.ReadFrom(proofFile); err != nil {
				return err
			}

			pubBytes, err := os.ReadFile(publicPath)
			if err != nil {
				return err
			}
			var pub witness.PublicInputs
			if err := json.Unmarshal(pubBytes, &pub); err != nil {
				return err
			}
			root, err := pub.RootInt()
			if err != nil {
				return err
			}
			leaf, err := pub.LeafInt()
			if err != nil {
				return err
			}

			if !ps.Verify(root, leaf, &proof) {
				return fmt.Errorf("membership not established")
			}
			fmt.Println("proof verified ✅")
			return nil
		},
	}

	cmd.Flags().StringVar(&systemPath, "system", "", "membership_d<depth>.system")
	cmd.Flags().StringVar(&proofPath, "proof", "", "membership_proof.bin")
	cmd.Flags().StringVar(&publicPath, "public", "", "membership_public.json")
	_ = cmd.MarkFlagRequired("system")
	_ = cmd.MarkFlagRequired("proof")
	_ = cmd.MarkFlagRequired("public")

	if err := cmd.Execute(); err != nil {
		logging.Logger().Fatal().Err(err).Msg("verifier failed")
	}
}
