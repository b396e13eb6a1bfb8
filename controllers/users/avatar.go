package users

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/JosephChoi/abcbond-api/database"
	"github.com/JosephChoi/abcbond-api/services"
	"github.com/JosephChoi/abcbond-api/utils"
)

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// POST /users/profile/avatar
//
// Multipart upload ("avatar" field) to S3-compatible storage; the stored
// object name replaces the user's avatar field.
func UploadAvatarHandler(w http.ResponseWriter, r *http.Request, identity utils.Identity) {
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Invalid form data",
		})
		return
	}

	file, handler, err := r.FormFile("avatar")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "avatar file is required",
		})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(handler.Filename))
	if !allowedAvatarExts[ext] {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Avatar must be JPG/PNG/WEBP",
		})
		return
	}
	if handler.Size > 5<<20 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Avatar must be at most 5MB",
		})
		return
	}

	// sniff content type from the first 512 bytes
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Failed to read avatar",
		})
		return
	}
	detected := http.DetectContentType(head[:n])
	if detected != "image/jpeg" && detected != "image/png" && detected != "image/webp" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIError{
			Error:   "Validation Error",
			Message: "Avatar must be JPG/PNG/WEBP",
		})
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		utils.WriteError(w, err)
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	svc := services.NewUserService(database.DB)
	user, err := svc.GetByID(identity.ID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	// replace the previous object, best effort
	if user.Avatar != nil && *user.Avatar != "" {
		_ = utils.DeleteFromS3(*user.Avatar)
	}

	objectName := "avatar_" + strconv.FormatUint(uint64(identity.ID), 10) + "_" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + ext
	if err := utils.UploadToS3(objectName, bytes.NewReader(data), int64(len(data))); err != nil {
		utils.WriteError(w, err)
		return
	}

	updated, err := svc.Update(identity.ID, map[string]interface{}{"avatar": objectName})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Avatar updated successfully",
		Data:    map[string]interface{}{"avatar": updated.Avatar},
	})
}
