package commands

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xmh0511/byte-aes/internal/domain/crypto"
	"github.com/xmh0511/byte-aes/internal/infrastructure/cryptography"
	"github.com/xmh0511/byte-aes/internal/pkg/config"
	"github.com/xmh0511/byte-aes/internal/pkg/keymaterial"
	"github.com/xmh0511/byte-aes/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var errNoKey = errors.New("no key given: use --key, --key-file or " + config.DefaultKeyEnv)

// AESCommandHandler encapsulates logic for handling AES-256 operations via CLI.
type AESCommandHandler struct {
	options crypto.CryptorOptions
	logger  logger.Logger
}

// NewAESCommandHandler initializes and returns an AESCommandHandler instance with
// configured logger and default cryptor options.
func NewAESCommandHandler() (*AESCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AESCommandHandler{
		options: crypto.DefaultCryptorOptions(),
		logger:  loggerInstance,
	}, nil
}

// GenerateKeyCmd writes a fresh 32 character key to the key file
func (commandHandler *AESCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) error {
	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return fmt.Errorf("invalid key-file flag: %w", err)
	}

	key := strings.ReplaceAll(uuid.New().String(), "-", "")

	if keyFilePath == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
		return err
	}

	if err := os.WriteFile(filepath.Clean(keyFilePath), []byte(key), 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	commandHandler.logger.Info("AES-256 key saved to ", keyFilePath)
	return nil
}

// EncryptCmd encrypts a file block by block
func (commandHandler *AESCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, outputFilePath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	cryptor, err := commandHandler.cryptorFromFlags(cmd)
	if err != nil {
		return err
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	encryptedData := cryptor.Encrypt(plainText)

	if err := os.WriteFile(filepath.Clean(outputFilePath), encryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Encrypted data saved to ", outputFilePath)
	return nil
}

// DecryptCmd decrypts a file block by block. Nothing is written when decryption fails.
func (commandHandler *AESCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	inputFilePath, outputFilePath, err := fileFlags(cmd)
	if err != nil {
		return err
	}

	cryptor, err := commandHandler.cryptorFromFlags(cmd)
	if err != nil {
		return err
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	decryptedData, err := cryptor.Decrypt(encryptedData)
	if err != nil {
		commandHandler.logger.Error("could not decrypt ", inputFilePath, ": ", err)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputFilePath), decryptedData, 0600); err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	commandHandler.logger.Info("Decrypted data saved to ", outputFilePath)
	return nil
}

// EncryptTextCmd prints the base64 encoded ciphertext of --text
func (commandHandler *AESCommandHandler) EncryptTextCmd(cmd *cobra.Command, _ []string) error {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return fmt.Errorf("invalid text flag: %w", err)
	}

	cryptor, err := commandHandler.cryptorFromFlags(cmd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(cryptor.Encrypt([]byte(text))))
	return err
}

// DecryptTextCmd prints the plaintext of the base64 encoded --ciphertext
func (commandHandler *AESCommandHandler) DecryptTextCmd(cmd *cobra.Command, _ []string) error {
	encoded, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		return fmt.Errorf("invalid ciphertext flag: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return fmt.Errorf("ciphertext is not valid base64: %w", err)
	}

	cryptor, err := commandHandler.cryptorFromFlags(cmd)
	if err != nil {
		return err
	}

	plainText, err := cryptor.Decrypt(ciphertext)
	if err != nil {
		commandHandler.logger.Error("could not decrypt text: ", err)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(plainText))
	return err
}

// cryptorFromFlags builds a cryptor from --key, --key-file or the key environment variable
func (commandHandler *AESCommandHandler) cryptorFromFlags(cmd *cobra.Command) (*cryptography.AES256Cryptor, error) {
	material, err := resolveKey(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return nil, err
	}

	key, err := crypto.NewKey(material)
	if err != nil {
		commandHandler.logger.Error(err)
		return nil, err
	}

	return cryptography.NewAES256Cryptor(key, commandHandler.logger, commandHandler.options)
}

func resolveKey(cmd *cobra.Command) ([]byte, error) {
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return nil, fmt.Errorf("invalid key flag: %w", err)
	}
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return nil, fmt.Errorf("invalid key-file flag: %w", err)
	}

	settings := &config.CryptorSettings{KeySource: config.KeySourceEnv, KeyEnv: config.DefaultKeyEnv}
	switch {
	case cmd.Flags().Changed("key"):
		settings = &config.CryptorSettings{KeySource: config.KeySourceLiteral, Key: key}
	case keyFile != "":
		settings = &config.CryptorSettings{KeySource: config.KeySourceFile, KeyFile: keyFile}
	case os.Getenv(config.DefaultKeyEnv) == "":
		return nil, errNoKey
	}

	return keymaterial.Resolve(settings)
}

func fileFlags(cmd *cobra.Command) (string, string, error) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	if inputFilePath == "" || outputFilePath == "" {
		return "", "", errors.New("--input-file and --output-file are required")
	}
	return inputFilePath, outputFilePath, nil
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "32-byte key given literally")
	cmd.Flags().StringP("key-file", "", "", "Path to a file holding the 32-byte key")
}

// InitAESCommands registers AES-256 related commands
func InitAESCommands(rootCmd *cobra.Command) error {
	handler, err := NewAESCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create AES command handler %w", err)
	}

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a 32 character AES-256 key",
		RunE:  handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().StringP("key-file", "", "", "Path to write the key to (stdout when empty)")
	rootCmd.AddCommand(generateKeyCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file",
		RunE:  handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	addKeyFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file",
		RunE:  handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Input encrypted file path")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	addKeyFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)

	var encryptTextCmd = &cobra.Command{
		Use:   "encrypt-text",
		Short: "Encrypt text and print the base64 ciphertext",
		RunE:  handler.EncryptTextCmd,
	}
	encryptTextCmd.Flags().StringP("text", "t", "", "Text to encrypt")
	addKeyFlags(encryptTextCmd)
	rootCmd.AddCommand(encryptTextCmd)

	var decryptTextCmd = &cobra.Command{
		Use:   "decrypt-text",
		Short: "Decrypt a base64 ciphertext and print the text",
		RunE:  handler.DecryptTextCmd,
	}
	decryptTextCmd.Flags().StringP("ciphertext", "c", "", "Base64 encoded ciphertext")
	addKeyFlags(decryptTextCmd)
	rootCmd.AddCommand(decryptTextCmd)

	return nil
}
