// Package clientcli provides a client library for interacting with textstore servers.
//
// It supports appending lines to the server's write file and reading named
// text files back. Profile-based configuration manages connections to
// multiple servers.
//
// # Basic Usage
//
// Create a client and append a line:
//
//	cfg := &clientcli.Config{Endpoint: "http://localhost:3000"}
//
//	client, err := clientcli.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Append(ctx, "hello")
//
// Read a file to stdout:
//
//	_, body, err := client.Read(ctx, clientcli.ReadOptions{Filename: "file.txt", LocalPath: "-"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer body.Close()
//	io.Copy(os.Stdout, body)
//
// # Profile Configuration
//
// Use profiles to manage multiple server configurations:
//
//	configFile, err := clientcli.LoadConfigFile("~/.textstore/config.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := configFile.GetProfile("production")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := clientcli.ConfigFromProfile(profile)
//	client, err := clientcli.New(cfg)
//
// # Output Formatting
//
// Use formatters for human-readable or JSON output:
//
//	formatter := clientcli.NewFormatter(jsonOutput, quiet)
//	formatter.FormatAppend(os.Stdout, result)
package clientcli
