// Package sftp delivers written export files to a remote SFTP server.
//
// Delivery is optional and runs after the exports have been written locally. Failures are
// returned to the caller, which logs them; a failed upload never invalidates the run.
//
// # Usage
//
//	u := sftp.NewUploader(cfg.SFTP)
//	if err := u.Upload(ctx, "./files/tradezone-products-updated.csv"); err != nil {
//	    logger.Error("Upload failed", zap.Error(err))
//	}
package sftp
