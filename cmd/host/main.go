// The host binary drives the naive Groth16 aggregation benchmark: it
// loads a proof, a verifying key and public inputs, and has the guest
// verify the proof --n times.
package main

import (
	"fmt"
	"os"

	"github.com/consensys/groth16-agg/common"
	"github.com/consensys/groth16-agg/fixtures"
	"github.com/consensys/groth16-agg/groth16"
	"github.com/consensys/groth16-agg/host"
	"github.com/consensys/groth16-agg/server"
	"github.com/consensys/groth16-agg/store"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
)

func main() {
	artifactFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "proof",
			Usage: "Path to the proof fixture",
			Value: "data/proof.json",
		},
		&cli.StringFlag{
			Name:  "vk",
			Usage: "Path to the verifying key fixture",
			Value: "data/vk.json",
		},
		&cli.StringFlag{
			Name:  "inputs",
			Usage: "Path to the public inputs fixture",
			Value: "data/inputs.json",
		},
	}

	app := &cli.App{
		Name:  "host",
		Usage: "naive Groth16 aggregation benchmark",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "runs the benchmark: the guest verifies the proof n times",
				Action: runBenchmark,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "n",
						Usage: "Batch size",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "guest",
						Usage: "Path to the guest binary; empty runs the guest in-process",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the results database; empty disables persistence",
					},
					&cli.BoolFlag{
						Name:  "profile",
						Usage: "Write a CPU profile of the run",
					},
				}, artifactFlags...),
			},
			{
				Name:   "generate",
				Usage:  "generates sample fixture files",
				Action: generateFixtures,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Directory to write the fixtures to",
						Value: "data",
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "verifies the fixture proof once, natively",
				Action: verifyOnce,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "backend",
						Usage: "Verifier backend: gnark-crypto or gosnark",
						Value: "gnark-crypto",
					},
				}, artifactFlags...),
			},
			{
				Name:   "serve",
				Usage:  "serves past benchmark results over HTTP",
				Action: serveResults,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to the results database",
						Value: "g16agg.db",
					},
					&cli.IntFlag{
						Name:  "port",
						Usage: "Port to listen on",
						Value: 8080,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadArtifacts(cmdCtx *cli.Context) (*groth16.Artifacts, error) {
	return groth16.LoadArtifacts(
		cmdCtx.String("proof"),
		cmdCtx.String("vk"),
		cmdCtx.String("inputs"),
	)
}

func runBenchmark(cmdCtx *cli.Context) error {
	n := cmdCtx.Int("n")
	if n < 1 {
		return fmt.Errorf("invalid batch size %d", n)
	}

	art, err := loadArtifacts(cmdCtx)
	if err != nil {
		return err
	}

	var exec host.Executor = host.InProcess{}
	if guestBin := cmdCtx.String("guest"); guestBin != "" {
		exec = host.Subprocess{GuestBin: guestBin}
	}

	if cmdCtx.Bool("profile") {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	report, err := host.New(exec).Run(art, n)
	if err != nil {
		return err
	}
	fmt.Println(report)

	if dbPath := cmdCtx.String("db"); dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.InsertRun(store.Run{
			N:         report.N,
			NumInputs: report.NumInputs,
			ProofID:   report.ProofID,
			Executor:  report.Executor,
			ElapsedMs: report.Elapsed.Milliseconds(),
			Verified:  report.Verified,
		})
		if err != nil {
			return err
		}
		common.NewLogger("host").Printf("Recorded run %d in %s", id, dbPath)
	}

	return nil
}

func generateFixtures(cmdCtx *cli.Context) error {
	dir := cmdCtx.String("dir")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	timer := common.NewTimer("fixture generation")
	proofPath, vkPath, inputsPath, err := fixtures.WriteFiles(dir)
	timer.Close()
	if err != nil {
		return err
	}

	log := common.NewLogger("host")
	log.Printf("Wrote %s, %s, %s", proofPath, vkPath, inputsPath)
	return nil
}

func verifyOnce(cmdCtx *cli.Context) error {
	art, err := loadArtifacts(cmdCtx)
	if err != nil {
		return err
	}

	backend := cmdCtx.String("backend")
	timer := common.NewTimer("verification")
	switch backend {
	case "gnark-crypto":
		err = groth16.Verify(art.VK, art.Proof, art.Inputs)
	case "gosnark":
		err = groth16.VerifyGoSnark(art.VK, art.Proof, art.Inputs)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
	timer.Close()

	if err != nil {
		return fmt.Errorf("verification failed: %v", err)
	}
	common.NewLogger("host").Printf("Proof verified (%s)", backend)
	return nil
}

func serveResults(cmdCtx *cli.Context) error {
	st, err := store.Open(cmdCtx.String("db"))
	if err != nil {
		return err
	}
	defer st.Close()

	return server.New(st).Start(cmdCtx.Int("port"))
}
