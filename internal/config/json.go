package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/scanbatch/internal/flagx"
	"github.com/dmitrijs2005/scanbatch/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell a missing key apart from an explicit empty value.
type JsonConfig struct {
	StorageDriver      *string         `json:"storage_driver"`
	DataDir            *string         `json:"data_dir"`
	ExportDir          *string         `json:"export_dir"`
	ResumeDelay        *timex.Duration `json:"resume_delay"`
	Timezone           *string         `json:"timezone"`
	CSVDelimiter       *string         `json:"csv_delimiter"`
	CSVHeaderDelimiter *string         `json:"csv_header_delimiter"`
	LogLevel           *string         `json:"log_level"`

	ShareTarget       *string         `json:"share_target"`
	S3Bucket          *string         `json:"s3_bucket"`
	S3Prefix          *string         `json:"s3_prefix"`
	S3Region          *string         `json:"s3_region"`
	S3Endpoint        *string         `json:"s3_endpoint"`
	S3AccessKeyID     *string         `json:"s3_access_key_id"`
	S3SecretAccessKey *string         `json:"s3_secret_access_key"`
	S3LinkTTL         *timex.Duration `json:"s3_link_ttl"`
	HTTPShareAddr     *string         `json:"http_share_addr"`
	HTTPShareBaseURL  *string         `json:"http_share_base_url"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Without either flag nothing is loaded. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.DataDir, jc.DataDir)
	setString(&cfg.ExportDir, jc.ExportDir)
	if jc.ResumeDelay != nil {
		cfg.ResumeDelay = jc.ResumeDelay.Duration
	}
	setString(&cfg.Timezone, jc.Timezone)
	setString(&cfg.CSVDelimiter, jc.CSVDelimiter)
	setString(&cfg.CSVHeaderDelimiter, jc.CSVHeaderDelimiter)
	setString(&cfg.LogLevel, jc.LogLevel)

	setString(&cfg.ShareTarget, jc.ShareTarget)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKeyID, jc.S3AccessKeyID)
	setString(&cfg.S3SecretAccessKey, jc.S3SecretAccessKey)
	if jc.S3LinkTTL != nil {
		cfg.S3LinkTTL = jc.S3LinkTTL.Duration
	}
	setString(&cfg.HTTPShareAddr, jc.HTTPShareAddr)
	setString(&cfg.HTTPShareBaseURL, jc.HTTPShareBaseURL)
}
