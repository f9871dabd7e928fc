package ops

const appLink = "Baixe o Toku+ na Google Play e faça seu cadastro:\nhttps://shorturl.at/GFy1L"

const webText = "Para acessar a versão via web:\n\n" +
	"1 - Verifique se você está com doação ativa.\n" +
	"    1.1 No Toku+, clique na sua imagem de perfil.\n" +
	"    1.2 Vá em \"Minhas Doações\".\n\n" +
	"2 - Caso esteja, acesse o site e utilize o mesmo Login do aplicativo:\n\n" +
	"https://streaming.tokuplus.com/"

const whatsAppText = "Acesse o grupo Toku+ pelo WhatsApp:\n\nhttps://chat.whatsapp.com/Hud6NZamWN2KSChvOHZreH"

const sentText = "Seu convite foi enviado!\n\n" + appLink

const donationText = "Para fazer uma doação:\n\n" +
	"Faça a transferência para o PIX:\n" +
	"tokuplus.contact@gmail.com\n\n" +
	"(Salve o comprovante)\n\n" +
	"\n" +
	"1. No Toku+, clique na sua imagem de perfil.\n" +
	"2. Vá em \"Minhas Doações\".\n" +
	"3. Escolha a opção \"Quero Ajudar\".\n" +
	"4. Escolha o valor da doação realizada.\n" +
	"5. Selecione o arquivo do comprovante.\n\n" +
	"Será efetivado o mais rápido possível."

func inviteText(token string) string {
	return "Convite processado para: " + token + "\n\n" + appLink
}
