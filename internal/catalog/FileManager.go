package catalog

import (
	json "github.com/goccy/go-json"
	"os"

	"globalpass/internal/catalog/interfaces"
	"globalpass/internal/models"
	"globalpass/internal/providers"
)

// FileManager persists the in-memory catalog to a compressed snapshot file so
// a restarted process can serve before the first remote fetch completes.
type FileManager struct {
	provider   ProviderInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, provider ProviderInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		provider:   provider,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.provider.Snapshot()
	if snapshot == nil {
		// Nothing loaded yet, keep the previous snapshot on disk.
		return nil
	}

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Current format: full catalog document.
	var c models.Catalog
	if err := json.Unmarshal(decompressedData, &c); err == nil && c.Packages != nil {
		c.Normalize()
		f.provider.Seed(&c)
		return nil
	}

	// Old format: a bare country map without the envelope.
	f.logger.Warnf(providers.TypeApp, "Inconsistent snapshot found, try to migrate from old format")
	var byCountry map[string][]models.ESIMPackage
	if err := json.Unmarshal(decompressedData, &byCountry); err != nil || byCountry == nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot migration failed")
		return err
	}
	migrated := &models.Catalog{Packages: byCountry}
	migrated.Normalize()
	f.provider.Seed(migrated)
	f.logger.Warnf(providers.TypeApp, "Snapshot migration from old format successful")

	return nil
}
