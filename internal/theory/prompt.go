package theory

import "fmt"

func buildTheoryPrompt(lessonTitle, grade string) string {
	return fmt.Sprintf(`
    Nhiệm vụ: Tóm tắt lý thuyết bài học %q - KHTN Lớp %s (Sách Kết nối tri thức).

    Yêu cầu đầu ra:
    1. Nội dung phải cực kỳ CÔ ĐỌNG, NGẮN GỌN, súc tích (dạng Cheat Sheet).
    2. Chỉ giữ lại:
       - Các định nghĩa cốt lõi nhất.
       - Các công thức quan trọng (Bắt buộc dùng LaTeX, ví dụ: $v = \frac{s}{t}$).
       - 1-2 ví dụ minh họa hoặc lưu ý quan trọng.
    3. Trình bày bằng Markdown đẹp mắt:
       - Dùng **in đậm** cho từ khóa.
       - Dùng gạch đầu dòng cho các ý.
    4. Không viết lời dẫn, vào thẳng nội dung.
  `, lessonTitle, grade)
}

func buildSimulationPrompt(lessonTitle, userRequest string) string {
	if userRequest == "" {
		userRequest = "Mô phỏng khái niệm quan trọng nhất của bài học này"
	}
	return fmt.Sprintf(`
    Bạn là một kỹ sư Frontend và chuyên gia giáo dục.
    Nhiệm vụ: Tạo một file HTML đơn duy nhất (Single File HTML) chứa CSS và JavaScript để mô phỏng trực quan kiến thức khoa học.

    Bài học: %q
    Yêu cầu cụ thể của người dùng: %q

    Yêu cầu kỹ thuật:
    1. Output CHỈ LÀ CODE HTML. Không kèm lời dẫn, không markdown fences.
    2. Code phải bao gồm đầy đủ:
       - CSS (trong thẻ <style>): Giao diện đẹp, hiện đại, dùng màu sắc tươi sáng, font chữ dễ đọc. Center nội dung.
       - HTML: Cấu trúc rõ ràng, có tiêu đề, vùng mô phỏng (canvas hoặc div), và các nút điều khiển (nếu cần).
       - JS (trong thẻ <script>): Logic mô phỏng. Nên dùng HTML5 Canvas API cho chuyển động mượt mà hoặc DOM manipulation.
    3. Tính tương tác:
       - Phải có ít nhất 1 yếu tố tương tác (slider thay đổi thông số, nút bấm Bắt đầu/Dừng, hoặc kéo thả).
       - Ví dụ: Nếu là bài "Áp suất", cho slider chỉnh độ cao cột nước. Nếu là "Tế bào", cho click vào các bộ phận để hiện tên.
    4. Đảm bảo code chạy được ngay lập tức khi mở trên trình duyệt mà không cần thư viện ngoài (hoặc dùng CDN phổ biến như Tailwind nếu cần thiết).
  `, lessonTitle, userRequest)
}
